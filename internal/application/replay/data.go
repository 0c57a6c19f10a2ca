package replay

import "github.com/younwookim/ziggurat/internal/application/system"

// Version is the replay file format version
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	MX int     `json:"mx"`           // MouseX
	MY int     `json:"my"`           // MouseY
	MC bool    `json:"mc,omitempty"` // MouseClick
	WY float64 `json:"wy,omitempty"` // WheelY
	SU bool    `json:"su,omitempty"` // ScrollUp
	SD bool    `json:"sd,omitempty"` // ScrollDown
	BK bool    `json:"bk,omitempty"` // Back
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func fromState(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		MX: in.MouseX,
		MY: in.MouseY,
		MC: in.MouseClick,
		WY: in.WheelY,
		SU: in.ScrollUp,
		SD: in.ScrollDown,
		BK: in.Back,
	}
}

func (fi FrameInput) state() system.InputState {
	return system.InputState{
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		MouseClick: fi.MC,
		WheelY:     fi.WY,
		ScrollUp:   fi.SU,
		ScrollDown: fi.SD,
		Back:       fi.BK,
	}
}
