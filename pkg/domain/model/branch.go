package model

import "github.com/m-mizutani/commit-timeline/pkg/domain/types"

// Branch is a branch reference scoped to one repository
type Branch struct {
	Name types.BranchName `json:"name"`
}
