package catalog

import "github.com/Jhonatansales/gestao-financeira/internal/model"

// defaultCategories is the built-in taxonomy. Ids are stable and referenced
// by transactions and limits; icons are named after lucide icons so the UI
// layer can map them.
var defaultCategories = []model.Category{
	{
		ID: "alimentacao", Name: "Alimentação", Icon: "Utensils", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "cafeterias", Name: "Cafeterias", Icon: "Coffee"},
			{ID: "restaurante-delivery", Name: "Restaurante ou Delivery", Icon: "Utensils"},
			{ID: "supermercado", Name: "Supermercado", Icon: "ShoppingCart"},
		},
	},
	{
		ID: "assinaturas", Name: "Assinaturas", Icon: "Newspaper", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "aplicativos", Name: "Aplicativos", Icon: "Smartphone"},
			{ID: "revistas-jornais", Name: "Revistas e Jornais", Icon: "Newspaper"},
			{ID: "servicos-digitais", Name: "Serviços Digitais", Icon: "Globe"},
		},
	},
	{
		ID: "compras-lazer", Name: "Compras e Lazer", Icon: "ShoppingCart", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "arte-musica", Name: "Arte e Música", Icon: "Music"},
			{ID: "coisas-casa", Name: "Coisas para Casa", Icon: "Home"},
			{ID: "eletronicos", Name: "Eletrônicos", Icon: "Smartphone"},
			{ID: "esportes-equipamentos", Name: "Esportes e Equipamentos", Icon: "Dumbbell"},
			{ID: "eventos-atividades", Name: "Eventos e Atividades", Icon: "Calendar"},
			{ID: "festa-encontros", Name: "Festa e Encontros", Icon: "Users"},
			{ID: "fotografia", Name: "Fotografia", Icon: "Camera"},
			{ID: "jogos-entretenimento", Name: "Jogos e Entretenimento", Icon: "Gamepad2"},
			{ID: "pets", Name: "Pets", Icon: "Heart"},
			{ID: "suprimentos", Name: "Suprimentos", Icon: "ShoppingCart"},
			{ID: "presentes", Name: "Presentes", Icon: "Gift"},
			{ID: "roupas-acessorios", Name: "Roupas e Acessórios", Icon: "Shirt"},
		},
	},
	{
		ID: "educacao-desenvolvimento", Name: "Educação e Desenvolvimento", Icon: "GraduationCap", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "cursos-treinamentos", Name: "Cursos e Treinamentos", Icon: "Book"},
			{ID: "livros-materiais", Name: "Livros e Materiais", Icon: "Book"},
			{ID: "mensalidade-escolar", Name: "Mensalidade Escolar", Icon: "School"},
		},
	},
	{
		ID: "emergencia", Name: "Emergência", Icon: "AlertTriangle", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "despesas-emergenciais", Name: "Despesas Emergenciais", Icon: "AlertTriangle"},
		},
	},
	{
		ID: "emprestimos", Name: "Empréstimos", Icon: "CreditCard", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "cartao-credito", Name: "Cartão de Crédito", Icon: "CreditCard"},
			{ID: "emprestimos-pessoais", Name: "Empréstimos Pessoais", Icon: "Banknote"},
			{ID: "financiamento-veiculo", Name: "Financiamento de Veículo", Icon: "Car"},
		},
	},
	{
		ID: "entretenimento-digital", Name: "Entretenimento Digital", Icon: "Tv", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "aplicativos-ent", Name: "Aplicativos", Icon: "Smartphone"},
			{ID: "jogos-ent", Name: "Jogos", Icon: "Gamepad2"},
		},
	},
	{
		ID: "hobbies-atividades", Name: "Hobbies e Atividades de Lazer", Icon: "Palette", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "arte-musica-hobby", Name: "Arte e Música", Icon: "Music"},
			{ID: "esportes-equipamentos-hobby", Name: "Esportes e Equipamentos", Icon: "Dumbbell"},
			{ID: "fotografia-hobby", Name: "Fotografia", Icon: "Camera"},
		},
	},
	{
		ID: "impostos-taxas", Name: "Impostos e Taxas", Icon: "FileText", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "iptu", Name: "IPTU", Icon: "Building"},
			{ID: "ipva", Name: "IPVA", Icon: "Car"},
			{ID: "imposto-renda", Name: "Imposto de Renda", Icon: "Calculator"},
		},
	},
	{
		ID: "investimentos", Name: "Investimentos", Icon: "TrendingUp", Type: model.CategoryTypeBoth,
		Subcategories: []model.SubCategory{
			{ID: "acoes", Name: "Ações", Icon: "TrendingUp"},
			{ID: "fundos-imobiliarios", Name: "Fundos Imobiliários", Icon: "Building"},
			{ID: "criptomoedas", Name: "Criptomoedas", Icon: "Coins"},
			{ID: "dividendos", Name: "Dividendos", Icon: "DollarSign"},
			{ID: "renda-fixa", Name: "Renda Fixa", Icon: "Target"},
		},
	},
	{
		ID: "manutencao-reparos", Name: "Manutenção e Reparos", Icon: "Wrench", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "reparos-eletrodomesticos", Name: "Reparos de Eletrodomésticos", Icon: "Zap"},
			{ID: "reparos-domesticos", Name: "Reparos Domésticos", Icon: "Hammer"},
		},
	},
	{
		ID: "moradia", Name: "Moradia", Icon: "Home", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "agua", Name: "Água", Icon: "Droplets"},
			{ID: "aluguel", Name: "Aluguel", Icon: "Home"},
			{ID: "condominio", Name: "Condomínio", Icon: "Building"},
			{ID: "financiamento-imovel", Name: "Financiamento de Imóvel", Icon: "Home"},
			{ID: "gas", Name: "Gás", Icon: "Zap"},
			{ID: "internet-telefone", Name: "Internet e Telefone", Icon: "Wifi"},
			{ID: "luz", Name: "Luz", Icon: "Zap"},
			{ID: "reformas-melhorias", Name: "Reformas e Melhorias", Icon: "Hammer"},
		},
	},
	{
		ID: "outros", Name: "Outros", Icon: "DollarSign", Type: model.CategoryTypeBoth,
		Subcategories: []model.SubCategory{
			{ID: "outros-geral", Name: "Outros", Icon: "DollarSign"},
		},
	},
	{
		ID: "poupanca", Name: "Poupança", Icon: "PiggyBank", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "fundo-emergencia", Name: "Fundo de Emergência", Icon: "Shield"},
			{ID: "reserva-curto-prazo", Name: "Reserva de Curto Prazo", Icon: "Target"},
			{ID: "reserva-longo-prazo", Name: "Reserva de Longo Prazo", Icon: "TrendingUp"},
		},
	},
	{
		ID: "renda", Name: "Renda", Icon: "DollarSign", Type: model.CategoryTypeIncome,
		Subcategories: []model.SubCategory{
			{ID: "renda-extra", Name: "Renda Extra", Icon: "Plus"},
			{ID: "rendimentos-investimentos", Name: "Rendimentos de Investimentos", Icon: "TrendingUp"},
			{ID: "salarios", Name: "Salários", Icon: "Briefcase"},
			{ID: "trabalho-conta", Name: "Trabalho por Conta", Icon: "Users"},
		},
	},
	{
		ID: "saude-bem-estar", Name: "Saúde e Bem-estar", Icon: "Heart", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "academia", Name: "Academia", Icon: "Dumbbell"},
			{ID: "bem-estar-spa", Name: "Bem-estar (Spa, Terapia)", Icon: "Heart"},
			{ID: "consultas-tratamentos", Name: "Consultas e Tratamentos", Icon: "Stethoscope"},
			{ID: "farmacia-medicamentos", Name: "Farmácia e Medicamentos", Icon: "Pill"},
			{ID: "planos-saude", Name: "Planos de Saúde", Icon: "Shield"},
		},
	},
	{
		ID: "seguros", Name: "Seguros", Icon: "Shield", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "seguro-automovel", Name: "Seguro de Automóvel", Icon: "Car"},
			{ID: "seguro-vida", Name: "Seguro de Vida", Icon: "Heart"},
			{ID: "seguro-residencial", Name: "Seguro Residencial", Icon: "Home"},
		},
	},
	{
		ID: "servicos-financeiros", Name: "Serviços Financeiros e Bancários", Icon: "University", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "assinaturas-financeiras", Name: "Assinaturas Financeiras", Icon: "CreditCard"},
			{ID: "taxas-contas-bancarias", Name: "Taxas de Contas Bancárias", Icon: "University"},
		},
	},
	{
		ID: "streaming", Name: "Streaming", Icon: "Tv", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "netflix", Name: "Netflix", Icon: "Tv"},
			{ID: "amazon-prime", Name: "Amazon Prime", Icon: "Tv"},
			{ID: "hbo", Name: "HBO", Icon: "Tv"},
			{ID: "disney", Name: "Disney+", Icon: "Tv"},
		},
	},
	{
		ID: "transferencias-pagamentos", Name: "Transferências e Pagamentos", Icon: "Send", Type: model.CategoryTypeBoth,
		Subcategories: []model.SubCategory{
			{ID: "boleto", Name: "Boleto", Icon: "FileText"},
			{ID: "cartao-credito-pag", Name: "Cartão de Crédito", Icon: "CreditCard"},
			{ID: "pagamentos-regulares", Name: "Pagamentos Regulares", Icon: "Calendar"},
			{ID: "pix-ted-doc", Name: "PIX, TED ou DOC", Icon: "Send"},
			{ID: "transferencias-contas", Name: "Transferências entre Contas", Icon: "ArrowRightLeft"},
			{ID: "transferencias-pessoas", Name: "Transferências para Outras Pessoas", Icon: "Users"},
		},
	},
	{
		ID: "transporte", Name: "Transporte", Icon: "Car", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "aplicativo-mobilidade", Name: "Aplicativo de Mobilidade", Icon: "Smartphone"},
			{ID: "estacionamento-pedagio", Name: "Estacionamento e Pedágio", Icon: "Car"},
			{ID: "manutencao-carro", Name: "Manutenção de Carro", Icon: "Wrench"},
			{ID: "transporte-publico", Name: "Transporte Público", Icon: "Truck"},
		},
	},
	{
		ID: "viagem", Name: "Viagem", Icon: "Plane", Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "alimentacao-viagem", Name: "Alimentação em Viagem", Icon: "Utensils"},
			{ID: "hospedagem", Name: "Hospedagem", Icon: "Bed"},
			{ID: "passagens-transporte", Name: "Passagens e Transporte", Icon: "Plane"},
			{ID: "passeios-lazer", Name: "Passeios e Lazer", Icon: "MapPin"},
		},
	},
}
