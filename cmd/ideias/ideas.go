package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bancoideias/backend-go/internal/database/models"
)

var ideaFlags struct {
	titulo      string
	videoURL    string
	musicaURL   string
	categoria   string
	descricao   string
	status      string
	favorito    bool
	publicidade bool
	data        string
}

func ideaFromFlags() models.Idea {
	idea := models.Idea{
		Titulo:      ideaFlags.titulo,
		Categoria:   ideaFlags.categoria,
		Descricao:   ideaFlags.descricao,
		Status:      ideaFlags.status,
		Favorito:    ideaFlags.favorito,
		Publicidade: ideaFlags.publicidade,
		Data:        ideaFlags.data,
	}
	if ideaFlags.videoURL != "" {
		idea.VideoURL = &ideaFlags.videoURL
	}
	if ideaFlags.musicaURL != "" {
		idea.MusicaURL = &ideaFlags.musicaURL
	}
	return idea
}

func addIdeaFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ideaFlags.titulo, "titulo", "", "idea title")
	cmd.Flags().StringVar(&ideaFlags.videoURL, "video", "", "reference video URL")
	cmd.Flags().StringVar(&ideaFlags.musicaURL, "musica", "", "reference music URL")
	cmd.Flags().StringVar(&ideaFlags.categoria, "categoria", models.CategoriaLegendado, "Legendado, Matéria or Meme")
	cmd.Flags().StringVar(&ideaFlags.descricao, "descricao", "", "description")
	cmd.Flags().StringVar(&ideaFlags.status, "status", models.StatusPendente, "Pendente or Concluída")
	cmd.Flags().BoolVar(&ideaFlags.favorito, "favorito", false, "mark as favorite")
	cmd.Flags().BoolVar(&ideaFlags.publicidade, "publicidade", false, "mark as ad content")
	cmd.Flags().StringVar(&ideaFlags.data, "data", "", "scheduled date (YYYY-MM-DD or RFC3339)")
}

func parseIDArg(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

func printIdea(idea models.Idea) {
	marks := ""
	if idea.Favorito {
		marks += " ★"
	}
	if idea.Publicidade {
		marks += " [AD]"
	}
	fmt.Printf("#%d  %-30s  %-10s  %-10s  %s%s\n",
		idea.ID, idea.Titulo, idea.Categoria, idea.Status, idea.Data, marks)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every idea",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}
		ideas := c.Ideas()
		if len(ideas) == 0 {
			fmt.Println("no ideas yet")
			return nil
		}
		for _, idea := range ideas {
			printIdea(idea)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		idea, err := newClient().GetIdea(cmd.Context(), id)
		if err != nil {
			return err
		}
		printIdea(*idea)
		if idea.Descricao != "" {
			fmt.Printf("  %s\n", idea.Descricao)
		}
		if idea.VideoURL != nil {
			fmt.Printf("  video:  %s\n", *idea.VideoURL)
		}
		if idea.MusicaURL != nil {
			fmt.Printf("  musica: %s\n", *idea.MusicaURL)
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an idea",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := newClient().AddIdea(cmd.Context(), ideaFromFlags())
		if err != nil {
			return err
		}
		fmt.Printf("idea created (id %d)\n", id)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an idea's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		if err := newClient().UpdateIdea(cmd.Context(), id, ideaFromFlags()); err != nil {
			return err
		}
		fmt.Printf("idea %d updated\n", id)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		if err := newClient().RemoveIdea(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("idea %d deleted\n", id)
		return nil
	},
}

func init() {
	addIdeaFlags(createCmd)
	addIdeaFlags(updateCmd)
}
