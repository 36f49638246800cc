package mathkeyboard

// Snapshot is a read-only view of the editor for hosts that render it.
type Snapshot struct {
	Document      Document           `json:"document"`
	Cursor        int                `json:"cursor"`
	TotalLength   int                `json:"totalLength"`
	Active        *ActivePlaceholder `json:"activePlaceholder"`
	Value         string             `json:"value"`
	Segments      []Segment          `json:"segments"`
	Version       uint64             `json:"version"`
	HasStructures bool               `json:"hasStructures"`
	IsEmpty       bool               `json:"isEmpty"`
}

func (e *Editor) Snapshot() Snapshot {
	var active *ActivePlaceholder
	if e.active != nil {
		a := *e.active
		active = &a
	}
	value := Serialize(e.doc)
	return Snapshot{
		Document:      e.doc.Clone(),
		Cursor:        e.cursor,
		TotalLength:   TotalLength(e.doc),
		Active:        active,
		Value:         value,
		Segments:      e.Render(),
		Version:       e.version,
		HasStructures: e.HasStructures(),
		IsEmpty:       value == "",
	}
}
