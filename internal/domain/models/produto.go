package models

// Produto is the catalogued item. Imagem is optional; CodigoBarras keeps
// insertion order. DescricaoMaxLen mirrors the column size.
type Produto struct {
	ID           int64    `json:"id"`
	Descricao    string   `json:"descricao"`
	PrecoCusto   float64  `json:"precoCusto"`
	PrecoVenda   float64  `json:"precoVenda"`
	Imagem       []byte   `json:"imagem,omitempty"`
	Ativo        bool     `json:"ativo"`
	CodigoBarras []string `json:"codigoBarras"`
}

const DescricaoMaxLen = 60
