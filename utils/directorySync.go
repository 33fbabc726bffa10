package utils

import (
	"log"

	"gyangrit/config"
	"gyangrit/models"

	"github.com/go-resty/resty/v2"
)

// SyncUserToDirectory pushes a newly registered account to the institution
// directory service. Failures are logged only; registration never depends on
// the directory being reachable.
func SyncUserToDirectory(user models.User) {
	if config.AppConfig.DirectoryApiURL == "" {
		return
	}

	client := resty.New()

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.DirectoryApiKey).
		SetBody(map[string]interface{}{
			"external_id": user.ID,
			"username":    user.Username,
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
		}).
		Post(config.AppConfig.DirectoryApiURL + "/users")

	if err != nil {
		log.Printf("Error syncing user %s to directory: %v", user.Username, err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Directory sync for user %s failed with status %d", user.Username, resp.StatusCode())
		return
	}

	log.Printf("User %s synced to institution directory", user.Username)
}
