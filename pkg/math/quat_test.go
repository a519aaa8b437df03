package math

import (
	"math"
	"testing"
)

func TestQuatIdentityMatrix(t *testing.T) {
	if got := QuatIdentity().ToMat4(); got != Identity() {
		t.Errorf("QuatIdentity().ToMat4() = %v, want identity", got)
	}
}

func TestQuatMulComposes(t *testing.T) {
	quarter := QuatFromAxisAngle(Up, float32(math.Pi/2))
	half := quarter.Mul(quarter)

	got := half.ToMat4().TransformPoint(Vec3{1, 0, 0})
	if want := (Vec3{-1, 0, 0}); !nearVec3(got, want) {
		t.Errorf("two quarter turns = %v, want %v", got, want)
	}
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero Quat.Normalize() = %v, want identity", got)
	}
}
