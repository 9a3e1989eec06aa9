package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceInfo is the single identity row of an aockit workspace archive.
type WorkspaceInfo struct {
	BrigadistaID string    `db:"brigadista_id"`
	CreationDate time.Time `db:"creation_date"`
}

// NewWorkspaceInfo mints the identity row for a freshly initialized workspace.
func NewWorkspaceInfo() *WorkspaceInfo {
	return &WorkspaceInfo{
		BrigadistaID: uuid.New().String(),
		CreationDate: time.Now(),
	}
}

type WorkspaceInfoTable struct {
	BrigadistaID string
	CreationDate string
}

func GetWorkspaceInfoTable() WorkspaceInfoTable {
	return WorkspaceInfoTable{
		BrigadistaID: "brigadista_id",
		CreationDate: "creation_date",
	}
}

func (WorkspaceInfoTable) TableName() string {
	return "workspace_info"
}
