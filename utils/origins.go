package utils

import "strings"

// OriginPolicy is a comma-separated list of allowed browser origins.
// "*" (or an empty list) allows any origin.
type OriginPolicy struct {
	any     bool
	origins map[string]struct{}
}

func ParseOrigins(list string) OriginPolicy {
	p := OriginPolicy{origins: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[strings.ToLower(o)] = struct{}{}
		}
	}
	if len(p.origins) == 0 {
		p.any = true
	}
	return p
}

func (p OriginPolicy) AllowAny() bool {
	return p.any
}

func (p OriginPolicy) Allowed(origin string) bool {
	if p.any {
		return true
	}
	_, ok := p.origins[strings.ToLower(strings.TrimRight(origin, "/"))]
	return ok
}
