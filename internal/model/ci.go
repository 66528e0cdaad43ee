package model

// CiKind identifies a CI service.
type CiKind int

// Known CI services. CiKindOther carries a raw, unrecognised name.
const (
	CiKindNone CiKind = iota
	CiKindCircle
	CiKindCodeship
	CiKindJenkins
	CiKindSemaphore
	CiKindTravis
	CiKindTravisPro
	CiKindOther
)

// CiService is a closed set of CI services plus a passthrough variant.
type CiService struct {
	kind CiKind
	raw  string
}

var ciNames = map[CiKind]string{
	CiKindCircle:    "circle-ci",
	CiKindCodeship:  "codeship",
	CiKindJenkins:   "jenkins",
	CiKindSemaphore: "semaphore",
	CiKindTravis:    "travis-ci",
	CiKindTravisPro: "travis-pro",
}

// CiCircle returns the CircleCI service.
func CiCircle() CiService { return CiService{kind: CiKindCircle} }

// CiCodeship returns the Codeship service.
func CiCodeship() CiService { return CiService{kind: CiKindCodeship} }

// CiJenkins returns the Jenkins service.
func CiJenkins() CiService { return CiService{kind: CiKindJenkins} }

// CiSemaphore returns the Semaphore service.
func CiSemaphore() CiService { return CiService{kind: CiKindSemaphore} }

// CiTravis returns the Travis CI service.
func CiTravis() CiService { return CiService{kind: CiKindTravis} }

// CiTravisPro returns the Travis Pro service.
func CiTravisPro() CiService { return CiService{kind: CiKindTravisPro} }

// CiOther wraps a service name that is not one of the known variants.
func CiOther(raw string) CiService { return CiService{kind: CiKindOther, raw: raw} }

// ParseCi maps a name onto a CiService. It cannot fail: unknown names become
// CiOther and the empty string is the zero value.
func ParseCi(raw string) CiService {
	if raw == "" {
		return CiService{}
	}

	for kind, name := range ciNames {
		if name == raw {
			return CiService{kind: kind}
		}
	}

	return CiOther(raw)
}

// Kind returns the variant tag.
func (c CiService) Kind() CiKind {
	return c.kind
}

// IsZero reports whether no service was selected.
func (c CiService) IsZero() bool {
	return c.kind == CiKindNone
}

// String returns the canonical service name, or the raw name for CiOther.
func (c CiService) String() string {
	if c.kind == CiKindOther {
		return c.raw
	}

	return ciNames[c.kind]
}
