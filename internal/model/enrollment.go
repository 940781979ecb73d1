package model

// Enrollment запись пользователя на курс.
// У одного пользователя не больше одной активной записи,
// новая запись заменяет предыдущую.
type Enrollment struct {
	UserID    int64  `json:"user_id"`
	CourseKey string `json:"course_key"`
}
