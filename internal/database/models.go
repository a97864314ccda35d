package database

import (
	"gorm.io/gorm"
)

// Registry is an administrative grouping of courts, e.g.
// "High Court (Commercial)". Judges, courts and cause lists are scoped
// to a registry.
type Registry struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Courts      []Court `json:"courts,omitempty" gorm:"foreignKey:RegistryID"`
}

type Court struct {
	gorm.Model
	RegistryID uint   `json:"registry_id" gorm:"index"`
	Name       string `json:"name"`
	CourtType  string `json:"court_type"`
	Location   string `json:"location"`
}

type Judge struct {
	gorm.Model
	RegistryID uint   `json:"registry_id" gorm:"index"`
	CourtID    uint   `json:"court_id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Status     string `json:"status"`
}

// CauseList is a single hearing-schedule entry. HearingDate and
// HearingTime are kept as the strings the clients submit: the calendar
// projection in internal/schedule owns all parsing and degrades
// per-record rather than rejecting writes.
type CauseList struct {
	gorm.Model
	RegistryID  uint   `json:"registry_id" gorm:"index"`
	CourtID     uint   `json:"court_id" gorm:"index"`
	JudgeID     uint   `json:"judge_id" gorm:"index"`
	CaseTitle   string `json:"case_title"`
	SuitNo      string `json:"suit_no"`
	CaseType    string `json:"case_type"`
	HearingDate string `json:"hearing_date" gorm:"index"`
	HearingTime string `json:"hearing_time"`
	JudgeName   string `json:"judge_name"`
	Status      string `json:"status"`
	Remarks     string `json:"remarks"`
}

// Cause-list status values. The set is open: the backend stores what it
// is given and these are only the values the admin UI offers.
const (
	StatusActive    = "Active"
	StatusClosed    = "Closed"
	StatusAdjourned = "Adjourned"
)

func (Registry) TableName() string {
	return "registries"
}

func (Court) TableName() string {
	return "courts"
}

func (Judge) TableName() string {
	return "judges"
}

func (CauseList) TableName() string {
	return "cause_lists"
}
