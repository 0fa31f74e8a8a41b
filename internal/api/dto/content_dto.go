package dto

// 表单字段名与旧版前端提交的字段保持一致（葡语/英语混用是历史遗留）

type PostBaseDTO struct {
	Titulo    string `form:"titulo" json:"titulo" binding:"required" validate:"min=1,max=255"`
	Categoria string `form:"categoria" json:"categoria" binding:"required"` // 自由文本，前端没有下拉框
	Data      string `form:"data" json:"data" binding:"required"`
	Conteudo  string `form:"conteudo" json:"conteudo" binding:"required"`
}

type ProductBaseDTO struct {
	Nome       string `form:"nome" json:"nome" binding:"required" validate:"min=1,max=255"`
	Preco      string `form:"preco" json:"preco" binding:"required"` // 自由文本，"Sob Consulta" 合法
	Categoria  string `form:"categoria" json:"categoria" binding:"required,oneof='Pistolas' 'Revólveres' 'Rifles e Carabinas' 'Espingardas' 'Acessórios' 'Cursos'"`
	Descricao  string `form:"descricao" json:"descricao" binding:"required"`
	LinkCompra string `form:"linkCompra" json:"linkCompra" binding:"required"`
}

type GalleryPhotoDTO struct {
	Title    string `form:"title" json:"title" binding:"required" validate:"min=1,max=255"`
	Category string `form:"category" json:"category" binding:"required,oneof=Treinamento Eventos Clube"`
}

type VideoBaseDTO struct {
	Title    string `form:"title" json:"title" binding:"required" validate:"min=1,max=255"`
	Category string `form:"category" json:"category" binding:"required"` // 自由文本
}
