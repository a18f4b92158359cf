package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/oficinapro/workshop-api/internal/config"
)

type MessageType string

const (
	MessageTypeQuoteCreated  MessageType = "QUOTE_CREATED"
	MessageTypeOrderApproved MessageType = "ORDER_APPROVED"
	MessageTypeOrderFinished MessageType = "ORDER_FINISHED"
)

// Message is one email event. The API enqueues these fire-and-forget; the
// email worker drains the queue and renders/sends the actual mail.
type Message struct {
	Type       MessageType `json:"type"`
	TenantID   string      `json:"empresa_id"`
	TenantName string      `json:"empresa_nome"`
	OrderID    string      `json:"ordem_id"`
	PortalURL  string      `json:"portal_url,omitempty"`
	Recipient  string      `json:"destinatario"`
	ClientName string      `json:"cliente_nome"`
	Plate      string      `json:"placa"`
	Total      float64     `json:"valor_total"`
	Timestamp  time.Time   `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client        *sqs.Client
	emailQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:        client,
		emailQueueURL: config.EmailQueueURL,
	}
}

func (s *SQSService) EmailQueueURL() string {
	return s.emailQueueURL
}

func (s *SQSService) SendEmailMessage(ctx context.Context, msg Message) error {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(s.emailQueueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.emailQueueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.emailQueueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
