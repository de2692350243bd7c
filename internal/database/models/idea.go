package models

// Idea categories as the client submits them.
const (
	CategoriaLegendado = "Legendado"
	CategoriaMateria   = "Matéria"
	CategoriaMeme      = "Meme"
)

// Idea statuses.
const (
	StatusPendente  = "Pendente"
	StatusConcluida = "Concluída"
)

// Idea is a planned content item. Data holds the scheduled posting date in
// the canonical persisted form "YYYY-MM-DD HH:MM:SS" (server local time);
// normalization happens in the service before any write.
type Idea struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Titulo      string  `gorm:"not null" json:"titulo"`
	VideoURL    *string `gorm:"column:videoUrl" json:"videoUrl"`
	MusicaURL   *string `gorm:"column:musicaUrl" json:"musicaUrl"`
	Categoria   string  `json:"categoria"`
	Descricao   string  `json:"descricao"`
	Status      string  `json:"status"`
	Favorito    bool    `json:"favorito"`
	Publicidade bool    `json:"publicidade"`
	Data        string  `json:"data"`
}

// TableName overrides the table name
func (Idea) TableName() string {
	return "ideias"
}
