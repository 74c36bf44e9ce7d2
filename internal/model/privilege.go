package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "transaction:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	// Member registry
	{Code: "member:view", Name: "View Member"},
	{Code: "member:create", Name: "Create Member"},
	{Code: "member:update", Name: "Update Member"},
	{Code: "member:delete", Name: "Delete Member"},
	// Transactions
	{Code: "transaction:view", Name: "View Transaction"},
	{Code: "transaction:create", Name: "Create Transaction"},
	{Code: "transaction:update", Name: "Update Transaction"},
	{Code: "transaction:delete", Name: "Delete Transaction"},
	// Employee funds
	{Code: "fund:view", Name: "View Funds"},
	{Code: "fund:toggle", Name: "Toggle Fund Payment"},
	// Documents (quotation/invoice/receipt)
	{Code: "document:view", Name: "View Document"},
	{Code: "document:create", Name: "Create Document"},
	{Code: "document:update", Name: "Update Document"},
	{Code: "document:delete", Name: "Delete Document"},
	// Dividend settings & capital
	{Code: "dividend:view", Name: "View Dividend Settings"},
	{Code: "dividend:update", Name: "Update Dividend Settings"},
	// Dashboard & reports
	{Code: "dashboard:view", Name: "View Dashboard"},
	{Code: "report:view", Name: "View Reports"},
	{Code: "report:export", Name: "Export Reports"},
}
