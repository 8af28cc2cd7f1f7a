package domain

import "time"

// Value is a raw filter input as it arrives at the boundary: a single
// scalar, an ordered list, or absent. Handlers build it once from the
// query string; everything downstream works on normalized Selections
// and never branches on the original shape.
type Value struct {
	values []string
	absent bool
}

func Absent() Value {
	return Value{absent: true}
}

func Scalar(v string) Value {
	return Value{values: []string{v}}
}

func List(vs []string) Value {
	cp := make([]string, len(vs))
	copy(cp, vs)
	return Value{values: cp}
}

func (v Value) IsAbsent() bool {
	return v.absent
}

// Values returns a copy of the raw entries; callers cannot mutate the input.
func (v Value) Values() []string {
	cp := make([]string, len(v.values))
	copy(cp, v.values)
	return cp
}

// Selection is a normalized filter set. Each field is ordered and
// duplicate-free. An empty field means "no restriction", never
// "select nothing".
type Selection struct {
	Projects     []string
	Applications []string
	Environments []string
}

func (s Selection) HasProjects() bool {
	return len(s.Projects) > 0
}

func (s Selection) HasApplications() bool {
	return len(s.Applications) > 0
}

// DateRange is an inclusive [Start, End] interval, Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}
