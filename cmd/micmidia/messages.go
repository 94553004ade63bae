package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/micmidia/landing/contact"
)

func newMessagesCmd(s *settings) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List received contact messages, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := contact.NewStore(s.cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			msgs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printMessages(cmd.OutOrStdout(), msgs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of messages (0 for all)")
	return cmd
}

func printMessages(w io.Writer, msgs []contact.Message) error {
	if len(msgs) == 0 {
		_, err := fmt.Fprintln(w, "no messages")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tMESSAGE")
	for _, m := range msgs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Name, m.Email, preview(m.Body, 60))
	}
	return tw.Flush()
}

// preview flattens body onto one line and cuts it to at most n runes.
func preview(body string, n int) string {
	s := strings.Join(strings.Fields(body), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
