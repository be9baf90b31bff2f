package config

// Scenario is the top-level YAML structure of a scenario file.
type Scenario struct {
	Version  string       `yaml:"version"`
	Name     string       `yaml:"name"`
	Start    int          `yaml:"start"`
	Labels   LabelConf    `yaml:"labels"`
	Graph    GraphConf    `yaml:"graph"`
	Playback PlaybackConf `yaml:"playback"`
}

// GraphConf describes the graph either as explicit edges or as a named
// topology. Exactly one of Edges or Topology is set. An absent
// default_weight means wgraph.DefaultWeight; an explicit 0 is kept.
type GraphConf struct {
	Directed      bool          `yaml:"directed"`
	DefaultWeight *int64        `yaml:"default_weight,omitempty"`
	Vertices      int           `yaml:"vertices"`
	Edges         []EdgeConf    `yaml:"edges"`
	Topology      *TopologyConf `yaml:"topology,omitempty"`
}

// EdgeConf is one edge. Undirected graphs turn it into a paired edge.
// A missing weight means GraphConf.DefaultWeight.
type EdgeConf struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Weight *int64 `yaml:"weight,omitempty"`
}

// TopologyConf selects a builder constructor.
type TopologyConf struct {
	Kind   string  `yaml:"kind"` // cycle, path, star, wheel, complete, grid, platonic, random
	N      int     `yaml:"n"`
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Solid  string  `yaml:"solid"` // platonic only; "cube" when empty
	Center bool    `yaml:"center"`
	P      float64 `yaml:"p"`
	Seed   int64   `yaml:"seed"`
	// Weights, when set, draws every weight uniformly from [min, max]
	// instead of using GraphConf.DefaultWeight.
	Weights *WeightRange `yaml:"weights,omitempty"`
}

// WeightRange is an inclusive weight interval.
type WeightRange struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// LabelConf picks how vertices are named in logs and DOT output.
// Names wins over Scheme for the indices it covers.
type LabelConf struct {
	Scheme string   `yaml:"scheme"` // index, symbol, excel, alnum, hex, prefix:<p>
	Names  []string `yaml:"names"`
}

// PlaybackConf controls how the CLI paces the stepper.
type PlaybackConf struct {
	Mode       string `yaml:"mode"` // step (wait for Enter) or auto (timer)
	IntervalMs int    `yaml:"interval_ms"`
	DotPath    string `yaml:"dot_path"` // rewritten after every step when set
}

// Playback modes.
const (
	ModeStep = "step"
	ModeAuto = "auto"
)

// Defaults applied at load time.
const (
	DefaultVersion    = "1"
	DefaultIntervalMs = 500
	DefaultScheme     = "index"
)
