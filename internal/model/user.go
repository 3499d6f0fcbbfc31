package model

// Role names the two account kinds the backend issues.
type Role string

const (
    RoleAdmin    Role = "ADMIN"
    RoleCustomer Role = "CUSTOMER"
)

// User represents an account as exposed by the backend's user endpoints.
//
// Fields:
//  ID          – backend identifier.
//  FullName    – display name.
//  Email       – login email, unique.
//  Phone       – contact phone number.
//  DateOfBirth – optional birth date.
//  Role        – ADMIN or CUSTOMER.
//  Locked      – locked accounts cannot log in.
type User struct {
    ID          int64  `json:"id"`
    FullName    string `json:"fullName"`
    Email       string `json:"email"`
    Phone       string `json:"phone"`
    DateOfBirth Date   `json:"dateOfBirth"`
    Role        Role   `json:"role"`
    Locked      bool   `json:"locked"`
}
