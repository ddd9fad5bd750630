package activity

import "github.com/google/uuid"

// DescendantClosure walks children breadth-first from root and returns every
// reachable sid, root included. Each sid is listed once.
func DescendantClosure(root uuid.UUID, children map[uuid.UUID][]uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{root: {}}
	out := []uuid.UUID{root}
	for i := 0; i < len(out); i++ {
		for _, child := range children[out[i]] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
		}
	}
	return out
}

// ChildrenIndex groups activities under their parent sid.
func ChildrenIndex(activities []Activity) map[uuid.UUID][]uuid.UUID {
	index := make(map[uuid.UUID][]uuid.UUID, len(activities))
	for _, a := range activities {
		if a.parentSID != nil {
			index[*a.parentSID] = append(index[*a.parentSID], a.sid)
		}
	}
	return index
}
