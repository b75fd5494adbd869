package profile

// Align places a technology row on the left or right of the column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Tech is a row of the technology list: a label and the short badge drawn
// next to it.
type Tech struct {
	ID        string
	Label     string
	Adornment string
	Align     Align
}

var stack = []Tech{
	{ID: "js-ts", Label: "JavaScript + TypeScript stacks", Adornment: "JS/TS", Align: AlignLeft},
	{ID: "aws", Label: "AWS", Adornment: "AWS", Align: AlignRight},
	{ID: "kubernetes", Label: "Kubernetes", Adornment: "K8s", Align: AlignLeft},
	{ID: "go", Label: "Golang", Adornment: "Go", Align: AlignRight},
	{ID: "kotlin", Label: "Kotlin", Adornment: "Kt", Align: AlignLeft},
	{ID: "python", Label: "Python", Adornment: "Py", Align: AlignRight},
}

// Stack returns the technology rows in display order.
func Stack() []Tech {
	out := make([]Tech, len(stack))
	copy(out, stack)
	return out
}
