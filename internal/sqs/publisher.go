package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/vkozyar/catalog-service/internal/metrics"
)

// SQSAPI is the subset of the SQS client the publisher depends on.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
}

// Publisher delivers JSON-encoded messages to named topics. Each topic maps
// to the queue of the same name; queue URLs are resolved once at Connect time
// and reused for every publish.
type Publisher struct {
	client    SQSAPI
	queueURLs map[string]string
}

// NewPublisher creates a Publisher for the given topics. Connect must be
// called before the first Publish.
func NewPublisher(client SQSAPI, topics ...string) *Publisher {
	queueURLs := make(map[string]string, len(topics))
	for _, topic := range topics {
		queueURLs[topic] = ""
	}
	return &Publisher{
		client:    client,
		queueURLs: queueURLs,
	}
}

// Connect resolves the queue URL for every configured topic. It doubles as
// the startup reachability check against the broker.
func (p *Publisher) Connect(ctx context.Context) error {
	for topic := range p.queueURLs {
		out, err := p.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
			QueueName: aws.String(topic),
		})
		if err != nil {
			return fmt.Errorf("failed to resolve queue for topic %s: %w", topic, err)
		}
		p.queueURLs[topic] = *out.QueueUrl
	}
	return nil
}

// Close releases the broker connection. SQS is connectionless, so this only
// exists to satisfy the publisher lifecycle used at startup and shutdown.
func (p *Publisher) Close() error {
	return nil
}

// Publish JSON-encodes the payload and sends it to the topic's queue.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	queueURL, ok := p.queueURLs[topic]
	if !ok || queueURL == "" {
		return fmt.Errorf("unknown topic: %s", topic)
	}

	messageBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(messageBody)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	metrics.EventsPublished.WithLabelValues(topic).Inc()
	return nil
}
