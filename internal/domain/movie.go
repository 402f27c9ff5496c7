package domain

import "context"

// Movie mirrors the backend's "filme" resource. The JSON field names are the
// backend's contract and stay in Portuguese.
type Movie struct {
	ID                 int64  `json:"id,omitempty"`
	Titulo             string `json:"titulo"`
	Sinopse            string `json:"sinopse"`
	Classificacao      string `json:"classificacao"`
	Duracao            int    `json:"duracao"`
	Elenco             string `json:"elenco"`
	Genero             string `json:"genero"`
	DataInicioExibicao Date   `json:"dataInicioExibicao"`
	DataFinalExibicao  Date   `json:"dataFinalExibicao"`
}

type MovieService interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int64) (*Movie, error)
	Create(ctx context.Context, movie *Movie) (*Movie, error)
	Update(ctx context.Context, id int64, movie *Movie) (*Movie, error)
	Delete(ctx context.Context, id int64) error
}
