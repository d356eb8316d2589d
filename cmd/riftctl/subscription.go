package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/csaide/riftdb/api/riftpb"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Manage subscriptions",
}

var subscriptionCreateCmd = &cobra.Command{
	Use:   "create [topic] [name]",
	Short: "Create a subscription on a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		s, err := subscriptionClient(conn).Create(ctx, &riftpb.CreateSubscriptionRequest{Topic: args[0], Name: args[1]})
		if err != nil {
			return err
		}
		printSubscription(s)
		return nil
	},
}

var subscriptionGetCmd = &cobra.Command{
	Use:   "get [topic] [name]",
	Short: "Get a subscription",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		s, err := subscriptionClient(conn).Get(ctx, &riftpb.GetSubscriptionRequest{Topic: args[0], Name: args[1]})
		if err != nil {
			return err
		}
		printSubscription(s)
		return nil
	},
}

var subscriptionListCmd = &cobra.Command{
	Use:   "list [topic]",
	Short: "List subscriptions on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		stream, err := subscriptionClient(conn).List(cmd.Context(), &riftpb.ListSubscriptionsRequest{Topic: args[0]})
		if err != nil {
			return err
		}
		for {
			s, err := stream.Recv()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			printSubscription(s)
		}
	},
}

var subscriptionUpdateCmd = &cobra.Command{
	Use:   "update [topic] [name]",
	Short: "Touch a subscription's updated timestamp",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		s, err := subscriptionClient(conn).Update(ctx, &riftpb.UpdateSubscriptionRequest{Topic: args[0], Name: args[1]})
		if err != nil {
			return err
		}
		printSubscription(s)
		return nil
	},
}

var subscriptionDeleteCmd = &cobra.Command{
	Use:   "delete [topic] [name]",
	Short: "Delete a subscription",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := withTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		if _, err := subscriptionClient(conn).Delete(ctx, &riftpb.DeleteSubscriptionRequest{Topic: args[0], Name: args[1]}); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func printSubscription(s *riftpb.Subscription) {
	fmt.Printf("%s/%s\tcreated=%s\tupdated=%s\n", s.GetTopic(), s.GetName(), formatTimestamp(s.GetCreated()), formatTimestamp(s.GetUpdated()))
}

func init() {
	subscriptionCmd.AddCommand(subscriptionCreateCmd, subscriptionGetCmd, subscriptionListCmd, subscriptionUpdateCmd, subscriptionDeleteCmd)
}
