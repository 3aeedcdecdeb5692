package imlayout

import "fmt"

// FrameStats describes the work done by one Begin/End pass.
type FrameStats struct {
	Frame uint64 // 1-based frame number

	Emitted  int // widget parts laid out, culled or not
	Culled   int // parts outside the padded viewport
	Created  int // parts that needed a new entry
	Reused   int // parts matched to a previous-frame entry
	Rebound  int // reused parts whose content had to be written to the host
	Retired  int // previous-frame entries nobody claimed
	Collided int // parts skipped because their key was already used this frame

	ContentHeight float64
	Pool          PoolStats
}

func (s FrameStats) String() string {
	return fmt.Sprintf("frame %d: emitted=%d culled=%d created=%d reused=%d rebound=%d retired=%d collided=%d height=%.0f pool(constructed=%d recycled=%d dropped=%d)",
		s.Frame, s.Emitted, s.Culled, s.Created, s.Reused, s.Rebound, s.Retired, s.Collided,
		s.ContentHeight, s.Pool.Constructed, s.Pool.Recycled, s.Pool.Dropped)
}
