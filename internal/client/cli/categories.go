package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tasktracker/internal/client/client"
	"github.com/dmitrijs2005/tasktracker/internal/client/models"
	"github.com/spf13/cobra"
)

func (a *App) categoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "c"},
		Short:   "Manage task categories",
	}

	var color string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				cat, err := c.CreateCategory(ctx, strings.Join(args, " "), color)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created category %s\n", cat.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&color, "color", "", "hex color like #ff8800 (default #007bff)")

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				cats, err := c.ListCategories(ctx)
				if err != nil {
					return err
				}
				printCategories(a.out, cats)
				return nil
			})
		},
	}

	var name, newColor string
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateCategoryRequest{
				ID:    args[0],
				Name:  changed(cmd.Flags(), "name", name),
				Color: changed(cmd.Flags(), "color", newColor),
			}
			if req.Name == nil && req.Color == nil {
				return fmt.Errorf("nothing to change, pass --name or --color")
			}
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				cat, err := c.UpdateCategory(ctx, &req)
				if err != nil {
					return err
				}
				printCategories(a.out, []models.Category{*cat})
				return nil
			})
		},
	}
	edit.Flags().StringVar(&name, "name", "", "new name")
	edit.Flags().StringVar(&newColor, "color", "", "new color")

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a category; its tasks are kept without a category",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				if err := c.DeleteCategory(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted category %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, edit, rm)
	return cmd
}
