package repository

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type requestItem struct {
	ID             string `dynamodbav:"id"`
	ClientID       string `dynamodbav:"client_id"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description,omitempty"`
	Status         string `dynamodbav:"status"`
	Priority       string `dynamodbav:"priority,omitempty"`
	RequestedDate  string `dynamodbav:"requested_date"`
	AssessmentDate string `dynamodbav:"assessment_date,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type RequestDynamoRepository = DynamoRepository[entities.Request, requestItem]

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *RequestDynamoRepository {
	return newDynamoRepository(ddb, tableName, toRequestItem, fromRequestItem)
}

func toRequestItem(r entities.Request) requestItem {
	return requestItem{
		ID:             r.ID,
		ClientID:       r.ClientID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         string(r.Status),
		Priority:       string(r.Priority),
		RequestedDate:  formatTime(r.RequestedDate),
		AssessmentDate: formatTimePtr(r.AssessmentDate),
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.Request {
	return entities.Request{
		ID:             it.ID,
		ClientID:       it.ClientID,
		Title:          it.Title,
		Description:    it.Description,
		Status:         entities.RequestStatus(it.Status),
		Priority:       entities.RequestPriority(it.Priority),
		RequestedDate:  parseTime(it.RequestedDate),
		AssessmentDate: parseTimePtr(it.AssessmentDate),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
