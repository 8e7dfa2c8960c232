package zone

// FindByID searches the subtree rooted at z for a zone with the given ID.
// Returns nil if no zone matches. IDs are compared for exact equality.
func FindByID(z *Zone, id string) *Zone {
	if z == nil {
		return nil
	}
	if z.ID == id {
		return z
	}
	for _, c := range z.Children {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindPath returns the chain of child IDs leading from root to the zone
// with the given ID, excluding the root itself. The root resolves to an
// empty (non-nil) path; a miss returns nil.
func FindPath(root *Zone, id string) []string {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return []string{}
	}
	for _, c := range root.Children {
		if sub := FindPath(c, id); sub != nil {
			return append([]string{c.ID}, sub...)
		}
	}
	return nil
}

// FindParent returns the direct parent of the zone with the given ID, or
// nil when the ID names the root or no zone matches.
func FindParent(root *Zone, id string) *Zone {
	if root == nil {
		return nil
	}
	for _, c := range root.Children {
		if c.ID == id {
			return root
		}
		if p := FindParent(c, id); p != nil {
			return p
		}
	}
	return nil
}

// Walk visits every zone in the subtree in pre-order, calling fn with the
// zone and its path from root. Walk stops early when fn returns false.
func Walk(root *Zone, fn func(z *Zone, path []string) bool) {
	walk(root, nil, fn)
}

func walk(z *Zone, path []string, fn func(*Zone, []string) bool) bool {
	if z == nil {
		return true
	}
	if !fn(z, path) {
		return false
	}
	for _, c := range z.Children {
		childPath := make([]string, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = c.ID
		if !walk(c, childPath, fn) {
			return false
		}
	}
	return true
}
