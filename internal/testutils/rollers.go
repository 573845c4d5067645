// Package testutils provides deterministic dice rollers for tests
package testutils

// FaceRoller returns Face on every roll, clamped to the die size. Face 1
// selects index 0 of every table.
type FaceRoller struct {
	Face int
}

// LowestRoller lands on the first entry of every table
func LowestRoller() *FaceRoller {
	return &FaceRoller{Face: 1}
}

// Roll implements dice.Roller
func (r *FaceRoller) Roll(size int) (int, error) {
	if r.Face > size {
		return size, nil
	}
	return r.Face, nil
}

// RollN implements dice.Roller
func (r *FaceRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// ScriptedRoller returns Faces in order and records every die size it was
// asked for. Once the script runs out it returns 1. A non-nil Err is
// returned from every roll.
type ScriptedRoller struct {
	Faces []int
	Sizes []int
	Err   error
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.Sizes = append(r.Sizes, size)
	if r.Err != nil {
		return 0, r.Err
	}
	if len(r.Faces) == 0 {
		return 1, nil
	}
	face := r.Faces[0]
	r.Faces = r.Faces[1:]
	return face, nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

func rollN(r interface{ Roll(int) (int, error) }, count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}
