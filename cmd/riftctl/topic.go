package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/csaide/riftdb/api/riftpb"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Manage topics",
}

var topicCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		t, err := topicClient(conn).Create(ctx, &riftpb.CreateTopicRequest{Name: args[0]})
		if err != nil {
			return err
		}
		printTopic(t)
		return nil
	},
}

var topicGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Get a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		t, err := topicClient(conn).Get(ctx, &riftpb.GetTopicRequest{Name: args[0]})
		if err != nil {
			return err
		}
		printTopic(t)
		return nil
	},
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		stream, err := topicClient(conn).List(cmd.Context(), &riftpb.ListTopicsRequest{})
		if err != nil {
			return err
		}
		for {
			t, err := stream.Recv()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			printTopic(t)
		}
	},
}

var topicUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Touch a topic's updated timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		t, err := topicClient(conn).Update(ctx, &riftpb.UpdateTopicRequest{Name: args[0]})
		if err != nil {
			return err
		}
		printTopic(t)
		return nil
	},
}

var topicDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a topic and cascade-delete its subscriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		if _, err := topicClient(conn).Delete(ctx, &riftpb.DeleteTopicRequest{Name: args[0]}); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func printTopic(t *riftpb.Topic) {
	fmt.Printf("%s\tcreated=%s\tupdated=%s\n", t.GetName(), formatTimestamp(t.GetCreated()), formatTimestamp(t.GetUpdated()))
}

func formatTimestamp(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Format(time.RFC3339)
}

func init() {
	topicCmd.AddCommand(topicCreateCmd, topicGetCmd, topicListCmd, topicUpdateCmd, topicDeleteCmd)
}
