package evolve

// Observer is notified of every step of a run, independent of Config.Verbose.
//
// Call order per run:
//
//	OnStart(initial) → OnIteration(...)* → OnFinish(summary, err)
//
// OnIteration receives the incumbent score after the step: the challenger's
// score when accepted, the unchanged best otherwise.
type Observer interface {
	OnStart(initial float64)
	OnIteration(accepted bool, best float64)
	OnFinish(s Summary, err error)
}

type nopObserver struct{}

func (nopObserver) OnStart(float64) {}
func (nopObserver) OnIteration(bool, float64) {}
func (nopObserver) OnFinish(Summary, error) {}
