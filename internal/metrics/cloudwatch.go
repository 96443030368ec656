package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

// maxDatumsPerRequest is the PutMetricData per-call limit.
const maxDatumsPerRequest = 1000

// PutMetricDataAPI is the subset of the CloudWatch client the sink needs.
type PutMetricDataAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

type CloudWatchSink struct {
	client PutMetricDataAPI
}

func NewCloudWatchSink(client PutMetricDataAPI) *CloudWatchSink {
	return &CloudWatchSink{client: client}
}

// NewCloudWatchClient builds a client from the default AWS credential chain.
// Every API call opens a span under the span carried by its context.
func NewCloudWatchClient(ctx context.Context, region string) (*cloudwatch.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions)
	return cloudwatch.NewFromConfig(cfg), nil
}

// Put issues one PutMetricData call per namespace and chunk.
func (s *CloudWatchSink) Put(ctx context.Context, samples []Sample) error {
	byNamespace := make(map[string][]types.MetricDatum)
	var order []string

	for _, sample := range samples {
		if _, ok := byNamespace[sample.Namespace]; !ok {
			order = append(order, sample.Namespace)
		}
		byNamespace[sample.Namespace] = append(byNamespace[sample.Namespace], toDatum(sample))
	}

	var errs []error
	for _, ns := range order {
		datums := byNamespace[ns]
		for start := 0; start < len(datums); start += maxDatumsPerRequest {
			end := min(start+maxDatumsPerRequest, len(datums))
			_, err := s.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
				Namespace:  aws.String(ns),
				MetricData: datums[start:end],
			})
			if err != nil {
				errs = append(errs, fmt.Errorf("put metric data %q: %w", ns, err))
			}
		}
	}
	return errors.Join(errs...)
}

func toDatum(s Sample) types.MetricDatum {
	d := types.MetricDatum{
		MetricName: aws.String(s.Name),
		Value:      aws.Float64(s.Value),
		Unit:       cloudWatchUnit(s.Unit),
	}
	if !s.Timestamp.IsZero() {
		d.Timestamp = aws.Time(s.Timestamp)
	}
	return d
}

func cloudWatchUnit(u Unit) types.StandardUnit {
	switch u {
	case UnitCount:
		return types.StandardUnitCount
	case UnitMilliseconds:
		return types.StandardUnitMilliseconds
	default:
		return types.StandardUnitNone
	}
}
