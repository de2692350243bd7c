package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/bancoideias/backend-go/internal/views"
)

var (
	bankFilter  string
	calendarDay string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Ideas scheduled for today, or the next upcoming one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}
		ideas := views.DashboardToday(c.Ideas(), time.Now())
		if len(ideas) == 0 {
			fmt.Println("nothing scheduled")
			return nil
		}
		for _, idea := range ideas {
			printIdea(idea)
		}
		return nil
	},
}

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Idea bank with filters, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}
		ideas := views.FilterBank(c.Ideas(), views.BankFilter(bankFilter), time.Now())
		if len(ideas) == 0 {
			fmt.Println("no ideas for this filter")
			return nil
		}
		for _, idea := range ideas {
			printIdea(idea)
		}
		return nil
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Per-day idea counts, or one day's ideas with --day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}

		if calendarDay != "" {
			ideas := views.IdeasOn(c.Ideas(), calendarDay)
			if len(ideas) == 0 {
				fmt.Println("Nenhuma ideia encontrada para esta data.")
				return nil
			}
			for _, idea := range ideas {
				printIdea(idea)
			}
			return nil
		}

		buckets := views.BucketByDay(c.Ideas())
		days := make([]string, 0, len(buckets))
		for day := range buckets {
			days = append(days, day)
		}
		sort.Strings(days)
		for _, day := range days {
			fmt.Printf("%s  %d\n", day, buckets[day])
		}
		return nil
	},
}

func init() {
	bankCmd.Flags().StringVar(&bankFilter, "filter", string(views.FilterTodas), "Todas, Hoje, Favoritas or Pendentes")
	calendarCmd.Flags().StringVar(&calendarDay, "day", "", "list ideas for one day (YYYY-MM-DD)")
}
