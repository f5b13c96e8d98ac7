package entities

// User представляет собой участника организации. В рамках сервиса досок
// пользователи только читаются.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	OrganizationID string `json:"-"`
}

// DisplayName возвращает имя для упоминания в уведомлениях.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
