package sink

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/firehose"
	"github.com/aws/aws-sdk-go-v2/service/firehose/types"
)

// Sink is the contract the streaming-ingestion buffer must satisfy: accept
// one encoded record and return the identifier the sink assigned to it.
type Sink interface {
	Publish(ctx context.Context, data []byte) (recordID string, err error)
}

// FirehoseAPI is the slice of the Firehose client the publisher needs.
type FirehoseAPI interface {
	PutRecord(ctx context.Context, params *firehose.PutRecordInput, optFns ...func(*firehose.Options)) (*firehose.PutRecordOutput, error)
}

// FirehosePublisher appends records to a Kinesis Data Firehose delivery
// stream, one PutRecord call per record.
type FirehosePublisher struct {
	client     FirehoseAPI
	streamName string
}

func NewFirehosePublisher(client FirehoseAPI, streamName string) *FirehosePublisher {
	return &FirehosePublisher{
		client:     client,
		streamName: streamName,
	}
}

func (p *FirehosePublisher) Publish(ctx context.Context, data []byte) (string, error) {
	out, err := p.client.PutRecord(ctx, &firehose.PutRecordInput{
		DeliveryStreamName: aws.String(p.streamName),
		Record:             &types.Record{Data: data},
	})
	if err != nil {
		return "", fmt.Errorf("failed to put record to stream %s: %w", p.streamName, err)
	}

	return aws.ToString(out.RecordId), nil
}
