// Package brain implements the small signal-propagation network that turns
// sensor readings into movement signals.
//
// Evaluation is a single pass in node insertion order with no fixed-point
// iteration: every node pushes value×weight along its outgoing edges once.
// A hidden node only forwards a complete sum if it was inserted after every
// node that feeds it.
package brain

// Kind classifies a node. It is fixed when the node is added.
type Kind uint8

const (
	Input Kind = iota
	Hidden
	Output
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Hidden:
		return "hidden"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

type edge struct {
	target int
	weight float64
}

type node struct {
	name  string
	kind  Kind
	value float64
	out   []edge
}

// NodeInfo is a read-only view of a node for display and tracing.
type NodeInfo struct {
	Name  string
	Kind  Kind
	Value float64
}

// EdgeInfo is a read-only view of an outgoing edge.
type EdgeInfo struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Network owns a table of named nodes and their weighted edges.
type Network struct {
	nodes      []node
	index      map[string]int
	activation Activation
}

// Option configures a Network at construction time.
type Option func(*Network)

// WithActivation replaces the identity activation applied to non-input nodes.
func WithActivation(fn Activation) Option {
	return func(n *Network) {
		if fn != nil {
			n.activation = fn
		}
	}
}

// New returns an empty network.
func New(opts ...Option) *Network {
	n := &Network{index: make(map[string]int), activation: Identity}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddNode inserts a node of the given kind.
func (n *Network) AddNode(name string, kind Kind) error {
	if _, ok := n.index[name]; ok {
		return &DuplicateNameError{Name: name}
	}
	n.index[name] = len(n.nodes)
	n.nodes = append(n.nodes, node{name: name, kind: kind})
	return nil
}

// Link appends a weighted edge from one existing node to another. Self-loops
// are permitted.
func (n *Network) Link(from, to string, weight float64) error {
	src, ok := n.index[from]
	if !ok {
		return &UnknownNodeError{Name: from}
	}
	dst, ok := n.index[to]
	if !ok {
		return &UnknownNodeError{Name: to}
	}
	n.nodes[src].out = append(n.nodes[src].out, edge{target: dst, weight: weight})
	return nil
}

// SetInput sets the value of an input node. Unknown names and non-input nodes
// are ignored so callers can feed sparse sensor sets.
func (n *Network) SetInput(name string, value float64) {
	i, ok := n.index[name]
	if !ok || n.nodes[i].kind != Input {
		return
	}
	n.nodes[i].value = value
}

// Run executes one forward pass and returns the value of every output node.
func (n *Network) Run() map[string]float64 {
	for i := range n.nodes {
		if n.nodes[i].kind != Input {
			n.nodes[i].value = 0
		}
	}

	for i := range n.nodes {
		src := n.nodes[i].value
		for _, e := range n.nodes[i].out {
			n.nodes[e.target].value += src * e.weight
		}
	}

	outputs := make(map[string]float64)
	for i := range n.nodes {
		nd := &n.nodes[i]
		if nd.kind == Input {
			continue
		}
		nd.value = n.activation(nd.value)
		if nd.kind == Output {
			outputs[nd.name] = nd.value
		}
	}
	return outputs
}

// Value returns the current value of the named node.
func (n *Network) Value(name string) (float64, bool) {
	i, ok := n.index[name]
	if !ok {
		return 0, false
	}
	return n.nodes[i].value, true
}

// Len reports the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// Nodes lists every node in insertion order.
func (n *Network) Nodes() []NodeInfo {
	out := make([]NodeInfo, len(n.nodes))
	for i, nd := range n.nodes {
		out[i] = NodeInfo{Name: nd.name, Kind: nd.kind, Value: nd.value}
	}
	return out
}

// Edges lists the outgoing edges of the named node in link order.
func (n *Network) Edges(name string) []EdgeInfo {
	i, ok := n.index[name]
	if !ok {
		return nil
	}
	out := make([]EdgeInfo, len(n.nodes[i].out))
	for j, e := range n.nodes[i].out {
		out[j] = EdgeInfo{To: n.nodes[e.target].name, Weight: e.weight}
	}
	return out
}
