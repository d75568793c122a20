// Command searchctl is a minimal, non-network demonstration front door
// for the search engine. It is not part of the engine's contract — a
// thin shell over pkg/engine, never imported back by it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/searchengine/internal/dedup"
	"github.com/anthropics/searchengine/internal/history"
	"github.com/anthropics/searchengine/internal/page"
	"github.com/anthropics/searchengine/pkg/engine"
	"github.com/anthropics/searchengine/pkg/types"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "searchctl",
		Short: "Demonstrate the in-memory TF-IDF search engine",
	}
	root.AddCommand(demoCmd())
	return root
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load a small corpus and exercise add/find/match/dedup/paginate/history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
}

func runDemo(ctx context.Context) error {
	e, err := engine.NewFromText("и в на", nil)
	if err != nil {
		return err
	}

	corpus := []struct {
		id      types.DocumentID
		text    string
		status  types.Status
		ratings []int
	}{
		{0, "белый кот и модный ошейник", types.StatusActual, []int{8, -2}},
		{1, "пушистый кот пушистый хвост", types.StatusActual, []int{7, 2, 6}},
		{2, "ухоженный пёс выразительные глаза", types.StatusActual, []int{5, -12, 2, 1}},
		{3, "ухоженный скворец евгений", types.StatusBanned, []int{9}},
	}
	for _, doc := range corpus {
		if err := e.AddDocument(doc.id, doc.text, doc.status, doc.ratings); err != nil {
			return err
		}
	}

	results, err := e.FindTopDocumentsDefault("пушистый ухоженный кот")
	if err != nil {
		return err
	}
	fmt.Println("find_top_documents(\"пушистый ухоженный кот\"):")
	for _, r := range results {
		fmt.Println(" ", r.String())
	}

	match, err := e.MatchDocument("кот хвост", 1)
	if err != nil {
		return err
	}
	fmt.Printf("match_document(\"кот хвост\", 1): words=%v status=%s\n", match.Words, match.Status)

	if err := dedup.RemoveDuplicates(e, e.Logger()); err != nil {
		return err
	}

	ids := e.Iter()
	paginator := page.New(ids, 2)
	fmt.Printf("document ids paginated (page size 2): %v\n", paginator.Pages())

	h := history.New(e)
	if _, err := h.AddFindRequest("нет такого слова"); err != nil {
		return err
	}
	if _, err := h.AddFindRequest("кот"); err != nil {
		return err
	}
	fmt.Printf("no_result_requests(): %d\n", h.NoResultRequests())

	_ = ctx
	return nil
}
