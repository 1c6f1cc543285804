package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var categoryColor string

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		list, err := categoryService.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		if jsonOutput {
			categoryList := make([]map[string]interface{}, 0, len(list))
			for _, category := range list {
				categoryList = append(categoryList, map[string]interface{}{
					"id":    category.ID,
					"label": category.Label,
					"color": category.Color,
				})
			}
			return printJSON(map[string]interface{}{
				"categories": categoryList,
				"count":      len(categoryList),
			})
		}

		if len(list) == 0 {
			fmt.Println("No categories yet.")
			return nil
		}
		for _, category := range list {
			fmt.Printf("  %s  %s\n", category.Color, category.Label)
		}
		return nil
	},
}

// categoriesAddCmd adds a category.
var categoriesAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		category, err := categoryService.AddCategory(ctx, args[0], categoryColor)
		if err != nil {
			return fmt.Errorf("failed to add category: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"id":    category.ID,
				"label": category.Label,
				"color": category.Color,
			})
		}

		fmt.Printf("✅ Category added: %s (%s)\n", category.Label, category.Color)
		return nil
	},
}

// categoriesRemoveCmd removes a category.
var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove [label]",
	Short: "Remove a category",
	Long:  `Remove a category. Tasks that used it keep existing without a category.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := categoryService.RemoveCategory(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to remove category: %w", err)
		}

		fmt.Printf("🗑️  Category removed: %s\n", args[0])
		return nil
	},
}

func init() {
	categoriesAddCmd.Flags().StringVar(&categoryColor, "color", "", "Hex color, e.g. #FF6B6B")
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)
}
