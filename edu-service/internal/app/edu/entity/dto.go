package entity

import "mime/multipart"

// === INQUIRIES ===

// CreateInquiryRequest - запрос с контактной формы
type CreateInquiryRequest struct {
	Name                string `json:"name" validate:"required,max=200"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,max=50"`
	Message             string `json:"message" validate:"required,max=5000"`
	PreferredUniversity string `json:"preferredUniversity" validate:"omitempty,max=200"`
	PreferredCourse     string `json:"preferredCourse" validate:"omitempty,max=200"`
	Status              string `json:"status" validate:"omitempty,oneof=new in-progress contacted closed"`
}

// UpdateInquiryRequest - частичное обновление, nil поля не изменяются
type UpdateInquiryRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email               *string `json:"email" validate:"omitempty,email"`
	Phone               *string `json:"phone" validate:"omitempty,min=1,max=50"`
	Message             *string `json:"message" validate:"omitempty,min=1,max=5000"`
	PreferredUniversity *string `json:"preferredUniversity" validate:"omitempty,max=200"`
	PreferredCourse     *string `json:"preferredCourse" validate:"omitempty,max=200"`
	Status              *string `json:"status" validate:"omitempty,oneof=new in-progress contacted closed"`
}

// === CONSULTATIONS ===

// CreateConsultationRequest - запись на консультацию
// Date принимается в формате YYYY-MM-DD или RFC 3339
type CreateConsultationRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,max=50"`
	Date             string `json:"date" validate:"required"`
	Time             string `json:"time" validate:"required,max=20"`
	ConsultationType string `json:"consultationType" validate:"required,oneof=in-person virtual phone"`
	Notes            string `json:"notes" validate:"omitempty,max=2000"`
	Status           string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
}

type UpdateConsultationRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,min=1,max=50"`
	Date             *string `json:"date" validate:"omitempty,min=1"`
	Time             *string `json:"time" validate:"omitempty,min=1,max=20"`
	ConsultationType *string `json:"consultationType" validate:"omitempty,oneof=in-person virtual phone"`
	Notes            *string `json:"notes" validate:"omitempty,max=2000"`
	Status           *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
}

// === TESTIMONIALS ===

type CreateTestimonialRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	University string `json:"university" validate:"required,max=200"`
	Course     string `json:"course" validate:"required,max=200"`
	Image      string `json:"image" validate:"required"`
	Content    string `json:"content" validate:"required,max=5000"`
	Featured   bool   `json:"featured"`
}

type UpdateTestimonialRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	University *string `json:"university" validate:"omitempty,min=1,max=200"`
	Course     *string `json:"course" validate:"omitempty,min=1,max=200"`
	Image      *string `json:"image" validate:"omitempty,min=1"`
	Content    *string `json:"content" validate:"omitempty,min=1,max=5000"`
	Featured   *bool   `json:"featured"`
}

// === UNIVERSITIES ===

type CreateUniversityRequest struct {
	Name         string        `json:"name" validate:"required,max=300"`
	Location     string        `json:"location" validate:"required,max=300"`
	Image        string        `json:"image" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	Ranking      *int          `json:"ranking" validate:"omitempty,min=1"`
	Website      string        `json:"website" validate:"omitempty,url"`
	Programs     []string      `json:"programs" validate:"omitempty,dive,required"`
	Fees         *Fees         `json:"fees"`
	Scholarships []Scholarship `json:"scholarships" validate:"omitempty,dive"`
}

type UpdateUniversityRequest struct {
	Name         *string        `json:"name" validate:"omitempty,min=1,max=300"`
	Location     *string        `json:"location" validate:"omitempty,min=1,max=300"`
	Image        *string        `json:"image" validate:"omitempty,min=1"`
	Description  *string        `json:"description" validate:"omitempty,min=1"`
	Ranking      *int           `json:"ranking" validate:"omitempty,min=1"`
	Website      *string        `json:"website" validate:"omitempty,url"`
	Programs     *[]string      `json:"programs" validate:"omitempty,dive,required"`
	Fees         *Fees          `json:"fees"`
	Scholarships *[]Scholarship `json:"scholarships" validate:"omitempty,dive"`
}

// === REVIEWS ===

// SubmitReviewRequest - отзыв о консультации
// Приходит как multipart/form-data (с картинками) или как JSON
type SubmitReviewRequest struct {
	ConsultationID string                  `json:"consultationId" form:"consultationId"`
	Rating         float64                 `json:"rating" form:"rating"`
	Content        string                  `json:"content" form:"content"`
	Images         []*multipart.FileHeader `json:"-" form:"-"`
}

// VoteReviewRequest - голос "полезно"/"не полезно"
type VoteReviewRequest struct {
	Type string `json:"type" validate:"required,oneof=helpful not-helpful"`
}

// ReportReviewRequest - жалоба на отзыв, причина необязательна
type ReportReviewRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// ModerateReviewRequest - смена статуса модерации
type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ReviewListFilter - параметры выборки одобренных отзывов
type ReviewListFilter struct {
	Rating         *float64
	ConsultationID string
	Sort           string
	Order          string
	Page           int
	Limit          int
}

// ReviewListResponse - страница одобренных отзывов
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int64    `json:"total"`
	Pages   int      `json:"pages"`
}

// === DASHBOARD ===

type MonthlyReviewStats struct {
	Month         string  `json:"month"` // YYYY-MM
	Count         int64   `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// DashboardStats - сводная статистика по всем отзывам (без фильтра по статусу)
type DashboardStats struct {
	TotalReviews    int64                `json:"totalReviews"`
	AverageRating   float64              `json:"averageRating"`
	ReviewsByRating map[string]int64     `json:"reviewsByRating"`
	RecentReviews   []Review             `json:"recentReviews"`
	MonthlyReviews  []MonthlyReviewStats `json:"monthlyReviews"`
}

// RatingBucket - результат группировки отзывов по оценке
type RatingBucket struct {
	Rating float64 `bson:"_id"`
	Count  int64   `bson:"count"`
}

// MonthBucket - результат группировки отзывов по месяцу создания
type MonthBucket struct {
	Period struct {
		Year  int `bson:"year"`
		Month int `bson:"month"`
	} `bson:"_id"`
	Count         int64   `bson:"count"`
	AverageRating float64 `bson:"averageRating"`
}

// === COMMON ===

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse - стандартный ответ об успехе
type MessageResponse struct {
	Message string `json:"message"`
}
