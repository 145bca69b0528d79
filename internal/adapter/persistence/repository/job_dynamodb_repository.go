package repository

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type jobItem struct {
	ID             string         `dynamodbav:"id"`
	ClientID       string         `dynamodbav:"client_id"`
	QuoteID        string         `dynamodbav:"quote_id,omitempty"`
	JobNumber      string         `dynamodbav:"job_number"`
	Title          string         `dynamodbav:"title"`
	Description    string         `dynamodbav:"description,omitempty"`
	LineItems      []lineItemItem `dynamodbav:"line_items"`
	Total          string         `dynamodbav:"total"`
	Status         string         `dynamodbav:"status"`
	ScheduledStart string         `dynamodbav:"scheduled_start,omitempty"`
	ScheduledEnd   string         `dynamodbav:"scheduled_end,omitempty"`
	AssignedTo     string         `dynamodbav:"assigned_to,omitempty"`
	Address        *addressItem   `dynamodbav:"address,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
}

type JobDynamoRepository = DynamoRepository[entities.Job, jobItem]

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client, tableName string) *JobDynamoRepository {
	return newDynamoRepository(ddb, tableName, toJobItem, fromJobItem)
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:             j.ID,
		ClientID:       j.ClientID,
		QuoteID:        j.QuoteID,
		JobNumber:      j.JobNumber,
		Title:          j.Title,
		Description:    j.Description,
		LineItems:      toLineItemItems(j.LineItems),
		Total:          j.Total.String(),
		Status:         string(j.Status),
		ScheduledStart: formatTimePtr(j.ScheduledStart),
		ScheduledEnd:   formatTimePtr(j.ScheduledEnd),
		AssignedTo:     j.AssignedTo,
		Address:        toAddressItemPtr(j.Address),
		CreatedAt:      formatTime(j.CreatedAt),
		UpdatedAt:      formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:             it.ID,
		ClientID:       it.ClientID,
		QuoteID:        it.QuoteID,
		JobNumber:      it.JobNumber,
		Title:          it.Title,
		Description:    it.Description,
		LineItems:      fromLineItemItems(it.LineItems),
		Total:          parseDecimal(it.Total),
		Status:         entities.JobStatus(it.Status),
		ScheduledStart: parseTimePtr(it.ScheduledStart),
		ScheduledEnd:   parseTimePtr(it.ScheduledEnd),
		AssignedTo:     it.AssignedTo,
		Address:        fromAddressItemPtr(it.Address),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
