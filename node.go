package layervec

// Output tree tag vocabulary. The tree is a generic attributed element
// tree; a separate serializer (see svgio) maps these tags onto a concrete
// text format.
const (
	// TagGroup is a container node emitted for a group layer.
	TagGroup = "group-container"
	// TagImage is a placeholder for one entry of the image list, in
	// append order.
	TagImage = "image-placeholder"
	// TagPath is a vector path node emitted for a shape layer.
	TagPath = "path"
	// TagDefs collects gradient, pattern and clip definitions referenced
	// by paint attributes via id.
	TagDefs = "defs"
	// TagLinearGradient is a gradient definition node.
	TagLinearGradient = "linear-gradient"
	// TagPattern is a pattern definition node.
	TagPattern = "pattern"
	// TagClipPath is a clip definition node.
	TagClipPath = "clip-path"
	// TagStop is a discrete gradient stop inside a gradient definition.
	TagStop = "stop"
)

// Attr is one key/value attribute of an OutputNode.
type Attr struct {
	Key   string
	Value string
}

// OutputNode is one node of the emitted vector-document element tree:
// a tag, an ordered attribute sequence, ordered children, and optional
// text content. The core only produces output nodes; it never reads them
// back except to count emitted image placeholders.
type OutputNode struct {
	Tag      string
	Attrs    []Attr
	Children []*OutputNode
	Text     string
}

// NewOutputNode creates an element node with the given tag.
func NewOutputNode(tag string) *OutputNode {
	return &OutputNode{Tag: tag}
}

// SetAttr sets an attribute, replacing an existing value for the same key
// in place so attribute order stays stable.
func (n *OutputNode) SetAttr(key, value string) *OutputNode {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Attr returns the value of the named attribute and whether it is set.
func (n *OutputNode) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild attaches child as the last child of n.
func (n *OutputNode) AppendChild(child *OutputNode) {
	n.Children = append(n.Children, child)
}

// CountTag returns the number of nodes with the given tag in the subtree
// rooted at n, including n itself. The dispatch engine uses this to check
// the image-placeholder/image-list correlation invariant after a run.
func (n *OutputNode) CountTag(tag string) int {
	count := 0
	if n.Tag == tag {
		count = 1
	}
	for _, c := range n.Children {
		count += c.CountTag(tag)
	}
	return count
}
