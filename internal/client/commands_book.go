package client

import (
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/spf13/cobra"
)

func (a *App) bookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Create, find and list books",
	}

	cmd.AddCommand(
		a.bookCreateCommand(),
		a.bookFindCommand(),
		a.bookListCommand(),
	)
	return cmd
}

func (a *App) bookCreateCommand() *cobra.Command {
	var book models.Book

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := a.adapter.CreateBook(cmd.Context(), book)
			if err != nil {
				return err
			}
			return a.printJSON(created)
		},
	}
	cmd.Flags().StringVar(&book.Title, "title", "", "book title")
	cmd.Flags().StringVar(&book.Message, "message", "", "book message")
	cmd.Flags().StringVar(&book.OwnerID, "owner", "", "id of the owning user")
	return cmd
}

func (a *App) bookFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <title>...",
		Short: "Find books by exact title",
		Long:  "Find the books whose title equals one of the given titles. A title must not contain a comma.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := a.adapter.FindBooks(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.printJSON(books)
		},
	}
}

func (a *App) bookListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books with their owners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			books, err := a.adapter.ListBooks(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(books)
		},
	}
}
