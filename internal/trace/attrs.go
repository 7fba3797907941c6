package trace

import "strconv"

// Attrs are the compiler facts a span carries. Zero fields are not printed.
type Attrs struct {
	Path      string // input .hs file
	Phase     string // load, tokenize, parse, check, emit, write
	Target    string // backend target id
	Artifacts int    // files produced by the span
	Cached    bool   // artifacts came from the disk cache
}

// inherit copies the input path and target of the enclosing span into a.
func (a Attrs) inherit(parent Attrs) Attrs {
	if a.Path == "" {
		a.Path = parent.Path
	}
	if a.Target == "" {
		a.Target = parent.Target
	}
	return a
}

type attr struct{ key, value string }

// list returns the set attributes in a fixed order.
func (a Attrs) list() []attr {
	var out []attr
	if a.Phase != "" {
		out = append(out, attr{"phase", a.Phase})
	}
	if a.Target != "" {
		out = append(out, attr{"target", a.Target})
	}
	if a.Path != "" {
		out = append(out, attr{"path", a.Path})
	}
	if a.Artifacts > 0 {
		out = append(out, attr{"artifacts", strconv.Itoa(a.Artifacts)})
	}
	if a.Cached {
		out = append(out, attr{"cached", "true"})
	}
	return out
}
