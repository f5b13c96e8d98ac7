package entities

// Board представляет собой именованную доску заметок организации.
type Board struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	IsPublic           bool   `json:"isPublic"`
	OrganizationID     string `json:"organizationId"`
	SendSlackUpdates   bool   `json:"sendSlackUpdates"`
	SendDiscordUpdates bool   `json:"sendDiscordUpdates"`
}
