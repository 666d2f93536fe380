//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// DashboardOverviewResponse is the body of GET admin/dashboard/overview/.
type DashboardOverviewResponse struct {
	Message string `json:"message"`
	Data    struct {
		Greeting  string `json:"greeting"`
		AdminName string `json:"admin_name"`
		AdminRole string `json:"admin_role"`
		Stats     struct {
			TotalUsers       int `json:"total_users"`
			TotalSubscribers int `json:"total_subscribers"`
			NewUsers         int `json:"new_users"`
		} `json:"stats"`
		DetailedStats struct {
			Users struct {
				Total              int `json:"total"`
				Active             int `json:"active"`
				Inactive           int `json:"inactive"`
				Verified           int `json:"verified"`
				Unverified         int `json:"unverified"`
				WithProfilePicture int `json:"with_profile_picture"`
			} `json:"users"`
			Subscribers struct {
				Total          int     `json:"total"`
				FreeUsers      int     `json:"free_users"`
				NewLast7Days   int     `json:"new_last_7_days"`
				ConversionRate float64 `json:"conversion_rate"`
			} `json:"subscribers"`
			Growth struct {
				NewUsersLast7Days  int `json:"new_users_last_7_days"`
				NewUsersLast30Days int `json:"new_users_last_30_days"`
			} `json:"growth"`
			UsersByRole map[string]int `json:"users_by_role"`
		} `json:"detailed_stats"`
		GeneratedAt string `json:"generated_at"`
	} `json:"data"`
}
