package searcher

type Phase int

const (
	PhaseSelection Phase = iota
	PhaseExpansion
	PhasePlayout
	PhaseBackpropagation
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseSelection:
		return "selection"
	case PhaseExpansion:
		return "expansion"
	case PhasePlayout:
		return "playout"
	case PhaseBackpropagation:
		return "backpropagation"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event describes an iteration as far as it has progressed. Fields of
// later phases are zero until the phase ran.
type Event struct {
	Iteration int
	Turn      int
	Phase     Phase

	Selected  *Node   // Leaf reached by selection
	Path      []*Node // Root to Selected
	Expanded  []*Node // Children created by expansion
	Simulated *Node   // Node the playout started from
	Depth     int     // Depth charge length
	Scores    Scores
	Backup    []*Node // Simulated up to the root
}

// Listener observes iterations. It must not mutate the tree.
type Listener func(Event)

func noopListener(Event) {}
