package component

type TransitionPhase int

const (
	TransitionNone TransitionPhase = iota
	TransitionFadeOut
	TransitionFadeIn
)

// TransitionRuntime holds transient state for an in-progress gate transition.
type TransitionRuntime struct {
	Phase   TransitionPhase
	Alpha   float64
	Timer   int
	Req     LevelChangeRequest
	ReqSent bool
}

var TransitionRuntimeComponent = NewComponent[TransitionRuntime]()
