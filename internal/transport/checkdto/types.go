package checkdto

import (
	"github.com/awmpietro/prereq-inference-case/internal/app"
	"github.com/awmpietro/prereq-inference-case/internal/requirement"
)

type CheckRequest struct {
	Requirement string                     `json:"requirement"`
	Student     *requirement.StudentRecord `json:"student"`
}

type CheckResponse struct {
	Verdict *app.Verdict `json:"verdict"`
}

type ParseRequest struct {
	Requirement string `json:"requirement"`
}

type ParseResponse struct {
	Normalized string `json:"normalized"`
	DOT        string `json:"dot"`
}
