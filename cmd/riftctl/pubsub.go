package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/csaide/riftdb/api/riftpb"
)

var pubAttrs []string

var pubCmd = &cobra.Command{
	Use:   "pub [topic] [data]",
	Short: "Publish a message to a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		attrs, err := parseAttrs(pubAttrs)
		if err != nil {
			return err
		}

		msg := &riftpb.Message{
			Topic:      args[0],
			Data:       []byte(args[1]),
			Attributes: attrs,
		}
		confirmation, err := pubsubClient(conn).Publish(ctx, &riftpb.PublishRequest{Message: msg})
		if err != nil {
			return err
		}
		fmt.Printf("published index=%d status=%s\n", confirmation.GetIndex(), confirmation.GetStatus())
		return nil
	},
}

var subTTL time.Duration

var subCmd = &cobra.Command{
	Use:   "sub [topic] [subscription]",
	Short: "Stream leased messages from a subscription until interrupted",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		stream, err := pubsubClient(conn).Subscribe(cmd.Context(), &riftpb.SubscribeRequest{
			Topic:        args[0],
			Subscription: args[1],
			TtlMs:        uint64(subTTL / time.Millisecond),
		})
		if err != nil {
			return err
		}
		for {
			lm, err := stream.Recv()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			lease := lm.GetLease()
			fmt.Printf("lease=%d index=%d data=%q\n", lease.GetId(), lease.GetIndex(), lm.GetMessage().GetData())
		}
	},
}

var ackCmd = &cobra.Command{
	Use:   "ack [topic] [subscription] [lease-id]",
	Short: "Acknowledge a leased message",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		leaseID, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lease id %q: %w", args[2], err)
		}

		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		confirmation, err := pubsubClient(conn).Ack(ctx, &riftpb.AckRequest{Topic: args[0], Subscription: args[1], LeaseId: leaseID})
		if err != nil {
			return err
		}
		fmt.Printf("acked status=%s\n", confirmation.GetStatus())
		return nil
	},
}

var nackCmd = &cobra.Command{
	Use:   "nack [topic] [subscription] [lease-id]",
	Short: "Negatively acknowledge a leased message, returning it to the queue",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		leaseID, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lease id %q: %w", args[2], err)
		}

		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		confirmation, err := pubsubClient(conn).Nack(ctx, &riftpb.NackRequest{Topic: args[0], Subscription: args[1], LeaseId: leaseID})
		if err != nil {
			return err
		}
		fmt.Printf("nacked status=%s\n", confirmation.GetStatus())
		return nil
	},
}

func parseAttrs(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(raw))
	for _, kv := range raw {
		idx := strings.IndexByte(kv, '=')
		if idx < 0 {
			return nil, fmt.Errorf("invalid attribute %q, want key=value", kv)
		}
		attrs[kv[:idx]] = kv[idx+1:]
	}
	return attrs, nil
}

func init() {
	pubCmd.Flags().StringArrayVar(&pubAttrs, "attr", nil, "message attribute as key=value, may be repeated")
	subCmd.Flags().DurationVar(&subTTL, "ttl", 0, "lease TTL for delivered messages; zero uses the broker default")
}
