package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Статусы обращений с контактной формы
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in-progress"
	InquiryStatusContacted  = "contacted"
	InquiryStatusClosed     = "closed"
)

// Статусы и типы консультаций
const (
	ConsultationStatusScheduled   = "scheduled"
	ConsultationStatusCompleted   = "completed"
	ConsultationStatusCancelled   = "cancelled"
	ConsultationStatusRescheduled = "rescheduled"

	ConsultationTypeInPerson = "in-person"
	ConsultationTypeVirtual  = "virtual"
	ConsultationTypePhone    = "phone"
)

// Статусы модерации отзывов
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Типы голосов за отзыв
const (
	VoteHelpful    = "helpful"
	VoteNotHelpful = "not-helpful"
)

// Inquiry - заявка с публичной контактной формы
type Inquiry struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                string             `json:"name" bson:"name"`
	Email               string             `json:"email" bson:"email"`
	Phone               string             `json:"phone" bson:"phone"`
	Message             string             `json:"message" bson:"message"`
	PreferredUniversity string             `json:"preferredUniversity,omitempty" bson:"preferredUniversity,omitempty"`
	PreferredCourse     string             `json:"preferredCourse,omitempty" bson:"preferredCourse,omitempty"`
	Status              string             `json:"status" bson:"status"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
}

// Consultation - запись на консультацию
// Дата и время приходят от клиента и не сверяются с расписанием
type Consultation struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"phone" bson:"phone"`
	Date             time.Time          `json:"date" bson:"date"`
	Time             string             `json:"time" bson:"time"`
	ConsultationType string             `json:"consultationType" bson:"consultationType"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Status           string             `json:"status" bson:"status"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

type Testimonial struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	University string             `json:"university" bson:"university"`
	Course     string             `json:"course" bson:"course"`
	Image      string             `json:"image" bson:"image"`
	Content    string             `json:"content" bson:"content"`
	Featured   bool               `json:"featured" bson:"featured"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type Fees struct {
	Undergraduate *float64 `json:"undergraduate,omitempty" bson:"undergraduate,omitempty"`
	Postgraduate  *float64 `json:"postgraduate,omitempty" bson:"postgraduate,omitempty"`
}

type Scholarship struct {
	Name        string `json:"name" bson:"name" validate:"required"`
	Amount      string `json:"amount,omitempty" bson:"amount,omitempty"`
	Eligibility string `json:"eligibility,omitempty" bson:"eligibility,omitempty"`
}

// University - карточка университета для каталога на сайте
// Сортируется по ranking (по возрастанию)
type University struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Location     string             `json:"location" bson:"location"`
	Image        string             `json:"image" bson:"image"`
	Description  string             `json:"description" bson:"description"`
	Ranking      *int               `json:"ranking,omitempty" bson:"ranking,omitempty"`
	Website      string             `json:"website,omitempty" bson:"website,omitempty"`
	Programs     []string           `json:"programs" bson:"programs"`
	Fees         Fees               `json:"fees" bson:"fees"`
	Scholarships []Scholarship      `json:"scholarships" bson:"scholarships"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type ReviewImage struct {
	URL     string `json:"url" bson:"url"`
	Caption string `json:"caption" bson:"caption"`
}

type ReviewReport struct {
	UserID    string    `json:"userId" bson:"userId"`
	Reason    string    `json:"reason" bson:"reason"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Review - отзыв пользователя о прошедшей консультации
// Пара (UserID, ConsultationID) уникальна - это гарантирует индекс в MongoDB
type Review struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID           string             `json:"userId" bson:"userId"`                 // ID пользователя у провайдера идентификации
	ConsultationID   string             `json:"consultationId" bson:"consultationId"` // ID консультации
	Rating           float64            `json:"rating" bson:"rating"`                 // От 0.5 до 5 с шагом 0.5
	Content          string             `json:"content" bson:"content"`
	Images           []ReviewImage      `json:"images" bson:"images"`
	VerifiedPurchase bool               `json:"verifiedPurchase" bson:"verifiedPurchase"`
	HelpfulVotes     int                `json:"helpfulVotes" bson:"helpfulVotes"`
	NotHelpfulVotes  int                `json:"notHelpfulVotes" bson:"notHelpfulVotes"`
	Status           string             `json:"status" bson:"status"`
	Reports          []ReviewReport     `json:"reports" bson:"reports"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Identity - пользователь, подтвержденный провайдером идентификации
type Identity struct {
	UserID string
	Email  string
}

// SiteEvent - событие для топика site_events в Kafka
type SiteEvent struct {
	EventType string            `json:"event_type"` // INQUIRY_CREATED, CONSULTATION_BOOKED, REVIEW_SUBMITTED, REVIEW_REPORTED
	EntityID  string            `json:"entity_id"`
	UserID    string            `json:"user_id,omitempty"`
	Email     string            `json:"email,omitempty"`
	Payload   map[string]string `json:"payload,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

const (
	EventInquiryCreated     = "INQUIRY_CREATED"
	EventConsultationBooked = "CONSULTATION_BOOKED"
	EventReviewSubmitted    = "REVIEW_SUBMITTED"
	EventReviewReported     = "REVIEW_REPORTED"
)
