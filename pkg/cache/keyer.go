package cache

// LayoutKeyOpts captures every input besides the tree itself that
// changes a solved layout. Two solves with equal tree hashes and equal
// options are interchangeable.
type LayoutKeyOpts struct {
	CabinetWidthMM       float64 `json:"cabinet_width_mm"`
	CabinetHeightMM      float64 `json:"cabinet_height_mm"`
	CabinetDepthMM       float64 `json:"cabinet_depth_mm"`
	PartitionThicknessMM float64 `json:"partition_thickness_mm"`
	BodyThicknessMM      float64 `json:"body_thickness_mm"`

	// LimitsHash folds the active structural limits into the key so a
	// changed limits file never serves stale geometry.
	LimitsHash string `json:"limits_hash"`
}

// Keyer generates cache keys for the cacheable stages of a solve.
type Keyer interface {
	// TreeKey generates a key for a stored zone tree.
	TreeKey(namespace, id string) string

	// LayoutKey generates a key for a solved layout.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for a stored zone tree.
func (k *DefaultKeyer) TreeKey(namespace, id string) string {
	return "tree:" + namespace + ":" + id
}

// LayoutKey generates a key for a solved layout.
func (k *DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation,
// so different users or contexts get separate cache namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// TreeKey generates a prefixed key for a stored zone tree.
func (k *ScopedKeyer) TreeKey(namespace, id string) string {
	return k.prefix + k.inner.TreeKey(namespace, id)
}

// LayoutKey generates a prefixed key for a solved layout.
func (k *ScopedKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(treeHash, opts)
}
