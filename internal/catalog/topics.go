package catalog

import "github.com/alexanderramin/cronograma/internal/domain"

// extensiveEntries is the full-year ENEM curriculum.
var extensiveEntries = []entry{
	{domain.SubjectMath, "Aritmética", "Operações com números reais"},
	{domain.SubjectMath, "Aritmética", "Razão e proporção"},
	{domain.SubjectMath, "Aritmética", "Porcentagem e juros"},
	{domain.SubjectMath, "Aritmética", "Regra de três"},
	{domain.SubjectMath, "Álgebra", "Funções do 1º grau"},
	{domain.SubjectMath, "Álgebra", "Funções do 2º grau"},
	{domain.SubjectMath, "Álgebra", "Função exponencial"},
	{domain.SubjectMath, "Álgebra", "Logaritmos"},
	{domain.SubjectMath, "Álgebra", "Progressões aritméticas e geométricas"},
	{domain.SubjectMath, "Álgebra", "Matrizes e determinantes"},
	{domain.SubjectMath, "Geometria", "Geometria plana: áreas"},
	{domain.SubjectMath, "Geometria", "Semelhança de triângulos"},
	{domain.SubjectMath, "Geometria", "Trigonometria no triângulo retângulo"},
	{domain.SubjectMath, "Geometria", "Geometria espacial: prismas e cilindros"},
	{domain.SubjectMath, "Geometria", "Geometria espacial: pirâmides, cones e esferas"},
	{domain.SubjectMath, "Geometria", "Geometria analítica"},
	{domain.SubjectMath, "Estatística", "Análise combinatória"},
	{domain.SubjectMath, "Estatística", "Probabilidade"},
	{domain.SubjectMath, "Estatística", "Estatística: média, moda e mediana"},
	{domain.SubjectMath, "Estatística", "Leitura de gráficos e tabelas"},
	{domain.SubjectPhysics, "Mecânica", "Cinemática escalar"},
	{domain.SubjectPhysics, "Mecânica", "Movimento circular"},
	{domain.SubjectPhysics, "Mecânica", "Leis de Newton"},
	{domain.SubjectPhysics, "Mecânica", "Trabalho, energia e potência"},
	{domain.SubjectPhysics, "Mecânica", "Quantidade de movimento"},
	{domain.SubjectPhysics, "Mecânica", "Hidrostática"},
	{domain.SubjectPhysics, "Termologia", "Calorimetria"},
	{domain.SubjectPhysics, "Termologia", "Termodinâmica"},
	{domain.SubjectPhysics, "Ondulatória", "Ondas e acústica"},
	{domain.SubjectPhysics, "Ondulatória", "Óptica geométrica"},
	{domain.SubjectPhysics, "Eletricidade", "Eletrostática"},
	{domain.SubjectPhysics, "Eletricidade", "Circuitos elétricos"},
	{domain.SubjectPhysics, "Eletricidade", "Eletromagnetismo"},
	{domain.SubjectChemistry, "Geral", "Modelos atômicos"},
	{domain.SubjectChemistry, "Geral", "Tabela periódica"},
	{domain.SubjectChemistry, "Geral", "Ligações químicas"},
	{domain.SubjectChemistry, "Geral", "Funções inorgânicas"},
	{domain.SubjectChemistry, "Geral", "Estequiometria"},
	{domain.SubjectChemistry, "Físico-Química", "Soluções"},
	{domain.SubjectChemistry, "Físico-Química", "Termoquímica"},
	{domain.SubjectChemistry, "Físico-Química", "Cinética química"},
	{domain.SubjectChemistry, "Físico-Química", "Equilíbrio químico"},
	{domain.SubjectChemistry, "Físico-Química", "Eletroquímica"},
	{domain.SubjectChemistry, "Orgânica", "Funções orgânicas"},
	{domain.SubjectChemistry, "Orgânica", "Isomeria"},
	{domain.SubjectChemistry, "Orgânica", "Reações orgânicas"},
	{domain.SubjectChemistry, "Orgânica", "Polímeros"},
	{domain.SubjectBiology, "Citologia", "Bioquímica celular"},
	{domain.SubjectBiology, "Citologia", "Membrana e organelas"},
	{domain.SubjectBiology, "Citologia", "Divisão celular"},
	{domain.SubjectBiology, "Genética", "Leis de Mendel"},
	{domain.SubjectBiology, "Genética", "Biotecnologia"},
	{domain.SubjectBiology, "Genética", "Evolução"},
	{domain.SubjectBiology, "Ecologia", "Cadeias e teias alimentares"},
	{domain.SubjectBiology, "Ecologia", "Ciclos biogeoquímicos"},
	{domain.SubjectBiology, "Ecologia", "Impactos ambientais"},
	{domain.SubjectBiology, "Fisiologia", "Fisiologia humana: digestão e respiração"},
	{domain.SubjectBiology, "Fisiologia", "Fisiologia humana: sistemas nervoso e endócrino"},
	{domain.SubjectBiology, "Fisiologia", "Botânica"},
	{domain.SubjectBiology, "Fisiologia", "Zoologia"},
	{domain.SubjectBiology, "Fisiologia", "Parasitologia"},
	{domain.SubjectHistory, "Brasil", "Brasil Colônia"},
	{domain.SubjectHistory, "Brasil", "Brasil Império"},
	{domain.SubjectHistory, "Brasil", "República Velha"},
	{domain.SubjectHistory, "Brasil", "Era Vargas"},
	{domain.SubjectHistory, "Brasil", "Ditadura Militar"},
	{domain.SubjectHistory, "Brasil", "Redemocratização"},
	{domain.SubjectHistory, "Geral", "Antiguidade Clássica"},
	{domain.SubjectHistory, "Geral", "Idade Média"},
	{domain.SubjectHistory, "Geral", "Revoluções Burguesas"},
	{domain.SubjectHistory, "Geral", "Revolução Industrial"},
	{domain.SubjectHistory, "Geral", "Guerras Mundiais"},
	{domain.SubjectHistory, "Geral", "Guerra Fria"},
	{domain.SubjectGeography, "Física", "Cartografia"},
	{domain.SubjectGeography, "Física", "Clima e fenômenos atmosféricos"},
	{domain.SubjectGeography, "Física", "Relevo e solos"},
	{domain.SubjectGeography, "Física", "Hidrografia"},
	{domain.SubjectGeography, "Física", "Biomas brasileiros"},
	{domain.SubjectGeography, "Humana", "Urbanização"},
	{domain.SubjectGeography, "Humana", "Industrialização"},
	{domain.SubjectGeography, "Humana", "Agropecuária"},
	{domain.SubjectGeography, "Humana", "Demografia"},
	{domain.SubjectGeography, "Humana", "Globalização e geopolítica"},
	{domain.SubjectGeography, "Humana", "Fontes de energia"},
	{domain.SubjectLanguages, "Interpretação", "Interpretação de texto"},
	{domain.SubjectLanguages, "Interpretação", "Gêneros textuais"},
	{domain.SubjectLanguages, "Interpretação", "Funções da linguagem"},
	{domain.SubjectLanguages, "Interpretação", "Variação linguística"},
	{domain.SubjectLanguages, "Gramática", "Coesão e coerência"},
	{domain.SubjectLanguages, "Gramática", "Figuras de linguagem"},
	{domain.SubjectLanguages, "Literatura", "Trovadorismo ao Arcadismo"},
	{domain.SubjectLanguages, "Literatura", "Romantismo"},
	{domain.SubjectLanguages, "Literatura", "Realismo e Naturalismo"},
	{domain.SubjectLanguages, "Literatura", "Modernismo"},
	{domain.SubjectLanguages, "Literatura", "Literatura contemporânea"},
	{domain.SubjectLanguages, "Artes", "Artes visuais e vanguardas"},
	{domain.SubjectLanguages, "Artes", "Língua estrangeira: interpretação"},
	{domain.SubjectPhilosophy, "Antiga", "Pré-socráticos"},
	{domain.SubjectPhilosophy, "Antiga", "Sócrates, Platão e Aristóteles"},
	{domain.SubjectPhilosophy, "Moderna", "Racionalismo e empirismo"},
	{domain.SubjectPhilosophy, "Moderna", "Contratualistas"},
	{domain.SubjectPhilosophy, "Moderna", "Iluminismo e Kant"},
	{domain.SubjectPhilosophy, "Contemporânea", "Ética e moral"},
	{domain.SubjectPhilosophy, "Contemporânea", "Existencialismo"},
	{domain.SubjectPhilosophy, "Contemporânea", "Escola de Frankfurt"},
	{domain.SubjectSociology, "Clássicos", "Durkheim"},
	{domain.SubjectSociology, "Clássicos", "Weber"},
	{domain.SubjectSociology, "Clássicos", "Marx"},
	{domain.SubjectSociology, "Temas", "Cultura e identidade"},
	{domain.SubjectSociology, "Temas", "Movimentos sociais"},
	{domain.SubjectSociology, "Temas", "Cidadania e direitos"},
	{domain.SubjectSociology, "Temas", "Trabalho e sociedade"},
	{domain.SubjectSociology, "Temas", "Desigualdade social"},
}

// intensiveEntries keeps the highest-incidence topics for short preparation windows.
var intensiveEntries = []entry{
	{domain.SubjectMath, "Aritmética", "Operações com números reais"},
	{domain.SubjectMath, "Aritmética", "Porcentagem e juros"},
	{domain.SubjectMath, "Álgebra", "Funções do 1º grau"},
	{domain.SubjectMath, "Álgebra", "Função exponencial"},
	{domain.SubjectMath, "Álgebra", "Progressões aritméticas e geométricas"},
	{domain.SubjectMath, "Geometria", "Geometria plana: áreas"},
	{domain.SubjectMath, "Geometria", "Trigonometria no triângulo retângulo"},
	{domain.SubjectMath, "Geometria", "Geometria espacial: pirâmides, cones e esferas"},
	{domain.SubjectMath, "Estatística", "Análise combinatória"},
	{domain.SubjectMath, "Estatística", "Estatística: média, moda e mediana"},
	{domain.SubjectPhysics, "Mecânica", "Cinemática escalar"},
	{domain.SubjectPhysics, "Mecânica", "Leis de Newton"},
	{domain.SubjectPhysics, "Mecânica", "Quantidade de movimento"},
	{domain.SubjectPhysics, "Termologia", "Calorimetria"},
	{domain.SubjectPhysics, "Ondulatória", "Ondas e acústica"},
	{domain.SubjectPhysics, "Eletricidade", "Eletrostática"},
	{domain.SubjectPhysics, "Eletricidade", "Eletromagnetismo"},
	{domain.SubjectChemistry, "Geral", "Modelos atômicos"},
	{domain.SubjectChemistry, "Geral", "Ligações químicas"},
	{domain.SubjectChemistry, "Geral", "Estequiometria"},
	{domain.SubjectChemistry, "Físico-Química", "Soluções"},
	{domain.SubjectChemistry, "Físico-Química", "Cinética química"},
	{domain.SubjectChemistry, "Físico-Química", "Eletroquímica"},
	{domain.SubjectChemistry, "Orgânica", "Funções orgânicas"},
	{domain.SubjectChemistry, "Orgânica", "Reações orgânicas"},
	{domain.SubjectBiology, "Citologia", "Bioquímica celular"},
	{domain.SubjectBiology, "Citologia", "Divisão celular"},
	{domain.SubjectBiology, "Genética", "Leis de Mendel"},
	{domain.SubjectBiology, "Genética", "Evolução"},
	{domain.SubjectBiology, "Ecologia", "Cadeias e teias alimentares"},
	{domain.SubjectBiology, "Ecologia", "Impactos ambientais"},
	{domain.SubjectBiology, "Fisiologia", "Fisiologia humana: digestão e respiração"},
	{domain.SubjectBiology, "Fisiologia", "Botânica"},
	{domain.SubjectBiology, "Fisiologia", "Parasitologia"},
	{domain.SubjectHistory, "Brasil", "Brasil Colônia"},
	{domain.SubjectHistory, "Brasil", "República Velha"},
	{domain.SubjectHistory, "Brasil", "Ditadura Militar"},
	{domain.SubjectHistory, "Geral", "Antiguidade Clássica"},
	{domain.SubjectHistory, "Geral", "Revoluções Burguesas"},
	{domain.SubjectHistory, "Geral", "Guerras Mundiais"},
	{domain.SubjectGeography, "Física", "Cartografia"},
	{domain.SubjectGeography, "Física", "Relevo e solos"},
	{domain.SubjectGeography, "Física", "Biomas brasileiros"},
	{domain.SubjectGeography, "Humana", "Urbanização"},
	{domain.SubjectGeography, "Humana", "Agropecuária"},
	{domain.SubjectGeography, "Humana", "Globalização e geopolítica"},
	{domain.SubjectLanguages, "Interpretação", "Interpretação de texto"},
	{domain.SubjectLanguages, "Interpretação", "Funções da linguagem"},
	{domain.SubjectLanguages, "Gramática", "Coesão e coerência"},
	{domain.SubjectLanguages, "Literatura", "Trovadorismo ao Arcadismo"},
	{domain.SubjectLanguages, "Literatura", "Realismo e Naturalismo"},
	{domain.SubjectLanguages, "Literatura", "Literatura contemporânea"},
	{domain.SubjectLanguages, "Artes", "Artes visuais e vanguardas"},
	{domain.SubjectPhilosophy, "Antiga", "Pré-socráticos"},
	{domain.SubjectPhilosophy, "Moderna", "Racionalismo e empirismo"},
	{domain.SubjectPhilosophy, "Moderna", "Iluminismo e Kant"},
	{domain.SubjectPhilosophy, "Contemporânea", "Ética e moral"},
	{domain.SubjectPhilosophy, "Contemporânea", "Escola de Frankfurt"},
	{domain.SubjectSociology, "Clássicos", "Durkheim"},
	{domain.SubjectSociology, "Clássicos", "Marx"},
	{domain.SubjectSociology, "Temas", "Cultura e identidade"},
	{domain.SubjectSociology, "Temas", "Cidadania e direitos"},
	{domain.SubjectSociology, "Temas", "Desigualdade social"},
}
