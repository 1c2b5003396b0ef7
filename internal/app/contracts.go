package app

import "github.com/awmpietro/prereq-inference-case/internal/requirement"

type CheckService interface {
	Check(raw string, st *requirement.StudentRecord) (*Verdict, error)
	Render(raw string) (*Rendering, error)
}
