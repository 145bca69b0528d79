package repository

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type clientItem struct {
	ID             string       `dynamodbav:"id"`
	FirstName      string       `dynamodbav:"first_name"`
	LastName       string       `dynamodbav:"last_name"`
	CompanyName    string       `dynamodbav:"company_name,omitempty"`
	Email          string       `dynamodbav:"email"`
	Phone          string       `dynamodbav:"phone"`
	Address        addressItem  `dynamodbav:"address"`
	BillingAddress *addressItem `dynamodbav:"billing_address,omitempty"`
	Balance        string       `dynamodbav:"balance"`
	Properties     int          `dynamodbav:"properties"`
	Tags           []string     `dynamodbav:"tags,omitempty"`
	Notes          string       `dynamodbav:"notes,omitempty"`
	CreatedAt      string       `dynamodbav:"created_at"`
	UpdatedAt      string       `dynamodbav:"updated_at"`
}

type ClientDynamoRepository = DynamoRepository[entities.Client, clientItem]

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client, tableName string) *ClientDynamoRepository {
	return newDynamoRepository(ddb, tableName, toClientItem, fromClientItem)
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		CompanyName:    c.CompanyName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        toAddressItem(c.Address),
		BillingAddress: toAddressItemPtr(c.BillingAddress),
		Balance:        c.Balance.String(),
		Properties:     c.Properties,
		Tags:           c.Tags,
		Notes:          c.Notes,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:             it.ID,
		FirstName:      it.FirstName,
		LastName:       it.LastName,
		CompanyName:    it.CompanyName,
		Email:          it.Email,
		Phone:          it.Phone,
		Address:        fromAddressItem(it.Address),
		BillingAddress: fromAddressItemPtr(it.BillingAddress),
		Balance:        parseDecimal(it.Balance),
		Properties:     it.Properties,
		Tags:           it.Tags,
		Notes:          it.Notes,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
