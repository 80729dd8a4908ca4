// Command dlq-reprocess возвращает события из dead letter queue outbox
// в рабочие топики. По умолчанию работает в режиме dry-run.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/cardapio/internal/service/outbox"
)

const (
	defaultReplayLimit = 100
	defaultIdleTimeout = 2 * time.Second
	envKafkaBrokers    = "CARDAPIO_KAFKA_BROKERS"
)

type config struct {
	brokers     []string
	sourceTopic string
	// targetTopic пустой: топик выбирается по типу агрегата.
	targetTopic string
	limit       int
	execute     bool
	idleTimeout time.Duration
}

type replayMessage struct {
	topic   string
	key     string
	value   []byte
	headers []sarama.RecordHeader
}

type replayStats struct {
	processed int
	replayed  int
	skipped   int
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := sarama.NewConsumer(cfg.brokers, consumerConfig())
	if err != nil {
		fail("create kafka consumer: %v", err)
	}
	defer func() { _ = consumer.Close() }()

	var producer sarama.SyncProducer
	if cfg.execute {
		producer, err = kafka.NewSyncProducer(cfg.brokers, "cardapio-dlq-reprocess")
		if err != nil {
			fail("create kafka producer: %v", err)
		}
		defer func() { _ = producer.Close() }()
	}

	stats, err := replay(ctx, cfg, consumer, producer)
	if err != nil {
		fail("dlq replay failed: %v", err)
	}

	mode := "dry-run"
	if cfg.execute {
		mode = "execute"
	}
	log.WithFields(log.Fields{
		"mode":      mode,
		"processed": stats.processed,
		"replayed":  stats.replayed,
		"skipped":   stats.skipped,
	}).Info("dlq replay finished")
}

func consumerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Consumer.Return.Errors = true
	return cfg
}

func parseConfig(args []string, getenv func(string) string) (config, error) {
	var (
		brokersRaw string
		cfg        config
	)

	fs := flag.NewFlagSet("dlq-reprocess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&brokersRaw, "brokers", "", "Kafka brokers as comma-separated list (fallback: "+envKafkaBrokers+")")
	fs.StringVar(&cfg.sourceTopic, "source-topic", kafka.TopicDeadLetterQueue, "DLQ source topic")
	fs.StringVar(&cfg.targetTopic, "target-topic", "", "target topic; empty routes by aggregate type")
	fs.IntVar(&cfg.limit, "limit", defaultReplayLimit, "max number of messages to scan")
	fs.BoolVar(&cfg.execute, "execute", false, "publish messages; default is dry-run")
	fs.DurationVar(&cfg.idleTimeout, "idle-timeout", defaultIdleTimeout, "stop reading a partition after this idle period")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if strings.TrimSpace(brokersRaw) == "" {
		brokersRaw = getenv(envKafkaBrokers)
	}
	cfg.brokers = parseBrokers(brokersRaw)
	cfg.sourceTopic = strings.TrimSpace(cfg.sourceTopic)
	cfg.targetTopic = strings.TrimSpace(cfg.targetTopic)

	switch {
	case len(cfg.brokers) == 0:
		return config{}, fmt.Errorf("kafka brokers are required (-brokers or %s)", envKafkaBrokers)
	case cfg.sourceTopic == "":
		return config{}, errors.New("source-topic is required")
	case cfg.limit <= 0:
		return config{}, errors.New("limit must be > 0")
	case cfg.idleTimeout <= 0:
		return config{}, errors.New("idle-timeout must be > 0")
	}
	return cfg, nil
}

func parseBrokers(raw string) []string {
	var brokers []string
	for _, chunk := range strings.Split(raw, ",") {
		if broker := strings.TrimSpace(chunk); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

// replay читает партиции sourceTopic с самого старого смещения и в режиме execute
// публикует восстановленные события. producer может быть nil в режиме dry-run.
func replay(ctx context.Context, cfg config, consumer sarama.Consumer, producer sarama.SyncProducer) (replayStats, error) {
	var stats replayStats
	if cfg.execute && producer == nil {
		return stats, errors.New("producer is required in execute mode")
	}

	partitions, err := consumer.Partitions(cfg.sourceTopic)
	if err != nil {
		return stats, fmt.Errorf("get partitions for topic %s: %w", cfg.sourceTopic, err)
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	for _, partition := range partitions {
		if stats.processed >= cfg.limit {
			break
		}
		if err := replayPartition(ctx, cfg, consumer, producer, partition, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func replayPartition(ctx context.Context, cfg config, consumer sarama.Consumer, producer sarama.SyncProducer, partition int32, stats *replayStats) error {
	pc, err := consumer.ConsumePartition(cfg.sourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	idle := time.NewTimer(cfg.idleTimeout)
	defer idle.Stop()

	for stats.processed < cfg.limit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle.C:
			return nil
		case cerr := <-pc.Errors():
			if cerr != nil {
				return fmt.Errorf("partition %d consumer error: %w", partition, cerr)
			}
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil {
				return nil
			}
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(cfg.idleTimeout)

			stats.processed++
			entry := log.WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset})

			out, err := extractReplayMessage(msg.Value, cfg.targetTopic)
			if err != nil {
				stats.skipped++
				entry.WithError(err).Warn("skip unsupported dlq message")
			} else if cfg.execute {
				if _, _, err := producer.SendMessage(&sarama.ProducerMessage{
					Topic:     out.topic,
					Key:       sarama.StringEncoder(out.key),
					Value:     sarama.ByteEncoder(out.value),
					Headers:   out.headers,
					Timestamp: time.Now().UTC(),
				}); err != nil {
					return fmt.Errorf("publish replay message: %w", err)
				}
				stats.replayed++
			} else {
				stats.replayed++
				entry.WithFields(log.Fields{"target_topic": out.topic, "key": out.key}).Info("dlq replay candidate")
			}

			if hwm := pc.HighWaterMarkOffset(); hwm > 0 && msg.Offset+1 >= hwm {
				return nil
			}
		}
	}
	return nil
}

// extractReplayMessage восстанавливает исходное событие из DLQ-конверта.
func extractReplayMessage(raw []byte, targetTopic string) (replayMessage, error) {
	var envelope kafka.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return replayMessage{}, fmt.Errorf("decode dlq envelope: %w", err)
	}
	if len(envelope.Payload) == 0 {
		return replayMessage{}, errors.New("dlq envelope has no payload")
	}

	dead, err := outbox.DecodeDeadLetter(envelope.Payload)
	if err != nil {
		return replayMessage{}, err
	}

	event := dead.Original()
	event.ID = firstNonEmpty(event.ID, envelope.ID)
	event.AggregateType = firstNonEmpty(event.AggregateType, envelope.AggregateType)
	event.AggregateID = firstNonEmpty(event.AggregateID, envelope.AggregateID)
	event.EventType = firstNonEmpty(event.EventType, envelope.EventType)

	encoded, err := json.Marshal(kafka.NewEnvelope(event, time.Now()))
	if err != nil {
		return replayMessage{}, fmt.Errorf("encode replay envelope: %w", err)
	}

	topic := targetTopic
	if topic == "" {
		topic = kafka.TopicFor(event.AggregateType, "")
	}
	return replayMessage{
		topic:   topic,
		key:     kafka.MessageKey(event),
		value:   encoded,
		headers: kafka.EventHeaders(event),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
