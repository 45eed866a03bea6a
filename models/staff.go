package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var Departments = []string{
	"public_works", "electricity", "water_supply", "sanitation",
	"safety", "emergency", "administration", "road_maintenance",
	"streetlight", "waste_management", "drainage", "parks",
	"building_inspection", "traffic", "environment",
}

var Designations = []string{
	"junior_officer", "field_officer", "senior_officer",
	"supervisor", "department_head", "assistant", "technician",
	"engineer", "inspector", "coordinator",
}

var StaffSkills = []string{
	"pothole_repair", "pipe_installation", "electrical_repair",
	"waste_collection", "road_marking", "tree_pruning",
	"drain_cleaning", "streetlight_maintenance", "inspection",
	"carpentry", "plumbing", "masonry", "painting",
}

// WorkStatus enum
type WorkStatus string

const (
	WorkAvailable WorkStatus = "available"
	WorkOnDuty    WorkStatus = "on_duty"
	WorkOnBreak   WorkStatus = "on_break"
	WorkOffDuty   WorkStatus = "off_duty"
	WorkEmergency WorkStatus = "emergency"
)

// StaffStatus enum
type StaffStatus string

const (
	StaffActive    StaffStatus = "active"
	StaffInactive  StaffStatus = "inactive"
	StaffOnLeave   StaffStatus = "on_leave"
	StaffSuspended StaffStatus = "suspended"
	StaffTraining  StaffStatus = "training"
)

// MaxSupervisorDepth bounds the supervisor chain walk.
const MaxSupervisorDepth = 16

type StaffLocation struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates []float64  `bson:"coordinates" json:"coordinates"`
	LastUpdated *time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	Accuracy    *float64   `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
}

type Shift struct {
	Start string `bson:"start,omitempty" json:"start,omitempty" binding:"omitempty,datetime=15:04"`
	End   string `bson:"end,omitempty" json:"end,omitempty" binding:"omitempty,datetime=15:04"`
}

// Staff is the employment record of a field_staff or municipality_admin user
type Staff struct {
	ID                    primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID                primitive.ObjectID  `bson:"userId" json:"userId"`
	EmployeeID            string              `bson:"employeeId" json:"employeeId"`
	Department            string              `bson:"department" json:"department"`
	Designation           string              `bson:"designation" json:"designation"`
	MunicipalityID        primitive.ObjectID  `bson:"municipalityId" json:"municipalityId"`
	AssignedWards         []string            `bson:"assignedWards" json:"assignedWards"`
	AssignedZones         []string            `bson:"assignedZones" json:"assignedZones"`
	Skills                []string            `bson:"skills" json:"skills"`
	Tools                 []string            `bson:"tools" json:"tools"`
	VehicleNumber         string              `bson:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	VehicleType           string              `bson:"vehicleType" json:"vehicleType"`
	Availability          bool                `bson:"availability" json:"availability"`
	CurrentLocation       *StaffLocation      `bson:"currentLocation,omitempty" json:"currentLocation,omitempty"`
	WorkStatus            WorkStatus          `bson:"workStatus" json:"workStatus"`
	Shift                 *Shift              `bson:"shift,omitempty" json:"shift,omitempty"`
	TotalTasksAssigned    int                 `bson:"totalTasksAssigned" json:"totalTasksAssigned"`
	TasksCompleted        int                 `bson:"tasksCompleted" json:"tasksCompleted"`
	TasksInProgress       int                 `bson:"tasksInProgress" json:"tasksInProgress"`
	AverageResolutionTime float64             `bson:"averageResolutionTime" json:"averageResolutionTime"`
	SupervisorID          *primitive.ObjectID `bson:"supervisorId,omitempty" json:"supervisorId,omitempty"`
	JoinDate              time.Time           `bson:"joinDate" json:"joinDate"`
	SalaryGrade           string              `bson:"salaryGrade,omitempty" json:"salaryGrade,omitempty"`
	Status                StaffStatus         `bson:"status" json:"status"`
	CreatedAt             time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CompletionRate is the rounded percentage of assigned tasks completed.
func (s *Staff) CompletionRate() int {
	if s.TotalTasksAssigned == 0 {
		return 0
	}
	return int(float64(s.TasksCompleted)/float64(s.TotalTasksAssigned)*100 + 0.5)
}

type StaffFilter struct {
	MunicipalityID *primitive.ObjectID
	Department     string
	Availability   *bool
	Status         StaffStatus
}

// StaffWithUser joins a staff record with the public fields of its user.
type StaffWithUser struct {
	Staff `bson:",inline"`
	User  *UserSummary `bson:"user,omitempty" json:"user,omitempty"`
}

// UserSummary is the subset of user fields embedded in listings.
type UserSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Status       UserStatus         `bson:"status" json:"status"`
	Role         Role               `bson:"role" json:"role"`
}
