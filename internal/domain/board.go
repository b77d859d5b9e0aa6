package domain

// BoardCategory groups pinned image references under a name.
type BoardCategory struct {
	Name string   `json:"name"`
	Refs []string `json:"refs"`
}

// BoardSet is the full pinned-boards structure persisted as one blob.
type BoardSet struct {
	Categories []BoardCategory `json:"categories"`
}

// Category returns the category with the given name, or nil.
func (b *BoardSet) Category(name string) *BoardCategory {
	for i := range b.Categories {
		if b.Categories[i].Name == name {
			return &b.Categories[i]
		}
	}
	return nil
}
