package exercises

import (
	"context"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Seed fills an empty catalog with the exercise encyclopedia. A non-empty
// catalog is left untouched, making the operation safe to repeat.
func (r *Repo) Seed(ctx context.Context) (inserted int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := r.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		span.SetAttributes(attribute.Int("existing", count))
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	now := time.Now()
	for _, e := range encyclopedia {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO exercise
				(name, muscle, exercise_type, pattern, equipment, subtype, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			e.Name, e.Muscle, e.ExerciseType, e.Pattern, e.Equipment, e.Subtype, now,
		); err != nil {
			return 0, fmt.Errorf("insert exercise [%s]: %w", e.Name, err)
		}
	}

	span.SetAttributes(attribute.Int("inserted", len(encyclopedia)))
	return len(encyclopedia), nil
}

var encyclopedia = []Exercise{
	{Muscle: "Espalda", Name: "Pull-up", ExerciseType: "Tirón vertical", Pattern: "Peso corporal", Equipment: "Barra fija/anillas", Subtype: "Prono, ancho, medio, estrecho; sin lastre"},
	{Muscle: "Espalda", Name: "Weighted pull-up", ExerciseType: "Tirón vertical", Pattern: "Peso corporal + lastre", Equipment: "Cinturón, chaleco", Subtype: "Igual que pull-up con peso adicional"},
	{Muscle: "Espalda", Name: "Chin-up", ExerciseType: "Tirón vertical", Pattern: "Peso corporal", Equipment: "Barra fija", Subtype: "Supino, ancho/estrecho"},
	{Muscle: "Espalda", Name: "Lat pulldown wide grip", ExerciseType: "Tirón vertical", Pattern: "Polea", Equipment: "Lat machine", Subtype: "Agarres ancho, prono"},
	{Muscle: "Espalda", Name: "Lat pulldown close/neutral", ExerciseType: "Tirón vertical", Pattern: "Polea", Equipment: "Lat machine", Subtype: "Barra V/neutral"},
	{Muscle: "Espalda", Name: "Barbell bent-over row", ExerciseType: "Tirón horizontal", Pattern: "Barra", Equipment: "Libre", Subtype: "Tronco inclinado, agarre prono"},
	{Muscle: "Espalda", Name: "One-arm dumbbell row", ExerciseType: "Tirón horizontal", Pattern: "Mancuerna", Equipment: "Banco", Subtype: "Clásico en banco con apoyo"},
	{Muscle: "Espalda", Name: "Seated cable row (V-bar)", ExerciseType: "Tirón horizontal", Pattern: "Polea", Equipment: "Polea baja", Subtype: "Agarre neutro estrecho"},
	{Muscle: "Espalda", Name: "Deadlift convencional", ExerciseType: "Bisagra", Pattern: "Barra", Equipment: "Libre", Subtype: "Dorsales, erectores, trapecio"},
	{Muscle: "Espalda", Name: "Face pull", ExerciseType: "Tirón alto", Pattern: "Polea", Equipment: "Polea media/alta", Subtype: "Deltoide posterior + trapecio"},

	{Muscle: "Pecho", Name: "Bench press (flat)", ExerciseType: "Empuje horizontal", Pattern: "Barra", Equipment: "Banco plano", Subtype: "Pectoral esternal (medio/inferior)"},
	{Muscle: "Pecho", Name: "Incline bench press", ExerciseType: "Empuje horizontal inclinado", Pattern: "Barra", Equipment: "Banco inclinado", Subtype: "Énfasis pectoral superior (clavicular)"},
	{Muscle: "Pecho", Name: "Decline bench press", ExerciseType: "Empuje horizontal declinado", Pattern: "Barra", Equipment: "Banco declinado", Subtype: "Más pectoral inferior"},
	{Muscle: "Pecho", Name: "DB bench press (flat)", ExerciseType: "Empuje horizontal", Pattern: "Mancuernas", Equipment: "Banco plano", Subtype: "Mayor rango que barra"},
	{Muscle: "Pecho", Name: "DB incline bench press", ExerciseType: "Empuje horizontal inclinado", Pattern: "Mancuernas", Equipment: "Banco inclinado", Subtype: "Pectoral superior"},
	{Muscle: "Pecho", Name: "Push-up", ExerciseType: "Empuje horizontal", Pattern: "Peso corporal", Equipment: "Suelo", Subtype: "Clásico; medio/inferior según ángulo"},
	{Muscle: "Pecho", Name: "Chest dip", ExerciseType: "Empuje vertical / diagonal", Pattern: "Peso corporal", Equipment: "Barras paralelas", Subtype: "Inclinando torso adelante, énfasis pectoral inferior"},
	{Muscle: "Pecho", Name: "Cable crossover (classic)", ExerciseType: "Apertura horizontal", Pattern: "Polea", Equipment: "Dos poleas", Subtype: "Desde alto a bajo o medio; muy usado"},
	{Muscle: "Pecho", Name: "DB fly (flat)", ExerciseType: "Apertura horizontal", Pattern: "Mancuernas", Equipment: "Banco plano", Subtype: "Estiramiento pec esternal"},
	{Muscle: "Pecho", Name: "Pec deck fly (machine)", ExerciseType: "Apertura horizontal", Pattern: "Máquina", Equipment: "Pec-deck", Subtype: "Aislante de pecho"},

	{Muscle: "Hombro", Name: "Barbell overhead press (standing)", ExerciseType: "Empuje vertical", Pattern: "Barra", Equipment: "Libre", Subtype: "Press militar clásico"},
	{Muscle: "Hombro", Name: "Seated DB shoulder press", ExerciseType: "Empuje vertical", Pattern: "Mancuernas", Equipment: "Sentado", Subtype: "Variante muy usada"},
	{Muscle: "Hombro", Name: "Arnold press (DB)", ExerciseType: "Empuje vertical", Pattern: "Mancuernas", Equipment: "Sentado/de pie", Subtype: "Rotación interna-externa, mucho anterior"},
	{Muscle: "Hombro", Name: "DB lateral raise (de pie)", ExerciseType: "Abducción", Pattern: "Mancuernas", Equipment: "Libre", Subtype: "Deltoide lateral"},
	{Muscle: "Hombro", Name: "DB front raise", ExerciseType: "Elevación frontal", Pattern: "Mancuernas", Equipment: "Libre", Subtype: "Deltoide anterior"},
	{Muscle: "Hombro", Name: "DB rear delt fly (bent-over)", ExerciseType: "Abducción horizontal", Pattern: "Mancuernas", Equipment: "Tronco inclinado", Subtype: "Clásico posterior"},
	{Muscle: "Hombro", Name: "Cable lateral raise (low pulley)", ExerciseType: "Abducción", Pattern: "Polea", Equipment: "Baja", Subtype: "Excelente tensión continua"},

	{Muscle: "Bíceps", Name: "Barbell curl (recta)", ExerciseType: "Flexión codo", Pattern: "Barra", Equipment: "Libre", Subtype: "Curl clásico con barra recta"},
	{Muscle: "Bíceps", Name: "EZ bar curl", ExerciseType: "Flexión codo", Pattern: "Barra EZ", Equipment: "Libre", Subtype: "Mismas mecánicas, menos estrés muñeca"},
	{Muscle: "Bíceps", Name: "Standing DB curl", ExerciseType: "Flexión codo", Pattern: "Mancuernas", Equipment: "Libre", Subtype: "Alterno o simultáneo, supino"},
	{Muscle: "Bíceps", Name: "Hammer curl", ExerciseType: "Flexión codo", Pattern: "Mancuernas", Equipment: "Libre", Subtype: "Agarre neutro (braquiorradial/braquial)"},
	{Muscle: "Bíceps", Name: "Incline DB curl", ExerciseType: "Flexión codo", Pattern: "Mancuernas", Equipment: "Banco inclinado", Subtype: "Mayor estiramiento bíceps"},
	{Muscle: "Bíceps", Name: "Concentration curl", ExerciseType: "Flexión codo", Pattern: "Mancuernas", Equipment: "Sentado", Subtype: "Brazo apoyado en muslo interno"},
	{Muscle: "Bíceps", Name: "Cable curl", ExerciseType: "Flexión codo", Pattern: "Polea", Equipment: "Baja", Subtype: "Barra recta/EZ, de pie"},

	{Muscle: "Tríceps", Name: "Close-grip bench press", ExerciseType: "Empuje horizontal", Pattern: "Barra", Equipment: "Banca", Subtype: "Manos estrechas, gran carga para tríceps"},
	{Muscle: "Tríceps", Name: "Lying barbell triceps extension (skullcrusher)", ExerciseType: "Extensión codo", Pattern: "Barra", Equipment: "Banca plana", Subtype: "Flex/extensión codo, barra hacia frente/cabeza"},
	{Muscle: "Tríceps", Name: "Overhead DB triceps extension", ExerciseType: "Extensión codo", Pattern: "Mancuernas", Equipment: "De pie/sentado", Subtype: "Un DB con ambas manos o uno por mano"},
	{Muscle: "Tríceps", Name: "DB kickback", ExerciseType: "Extensión codo", Pattern: "Mancuernas", Equipment: "Banco/de pie", Subtype: "Extensión hacia atrás"},
	{Muscle: "Tríceps", Name: "Triceps pushdown (cable)", ExerciseType: "Extensión codo", Pattern: "Polea", Equipment: "Alta, barra", Subtype: "Clásico de extensión, agarre prono"},
	{Muscle: "Tríceps", Name: "Rope pushdown", ExerciseType: "Extensión codo", Pattern: "Polea", Equipment: "Alta, cuerda", Subtype: "Separa cuerdas al final"},
	{Muscle: "Tríceps", Name: "Parallel bar dip (triceps)", ExerciseType: "Empuje vertical", Pattern: "Peso corporal", Equipment: "Barras paralelas", Subtype: "Tronco más vertical, codos pegados"},

	{Muscle: "Cuádriceps", Name: "Back squat", ExerciseType: "Sentadilla", Pattern: "Barra", Equipment: "Rack", Subtype: "Barra alta o baja"},
	{Muscle: "Cuádriceps", Name: "Front squat", ExerciseType: "Sentadilla frontal", Pattern: "Barra", Equipment: "Rack", Subtype: "Más énfasis en cuádriceps"},
	{Muscle: "Cuádriceps", Name: "Goblet squat", ExerciseType: "Sentadilla", Pattern: "Mancuernas/Kettlebell", Equipment: "Cargada frontal", Subtype: "Buen patrón para quad"},
	{Muscle: "Cuádriceps", Name: "Leg extension machine", ExerciseType: "Extensión rodilla", Pattern: "Máquina", Equipment: "Selectorizada", Subtype: "Aíslante de cuádriceps"},
	{Muscle: "Cuádriceps", Name: "45° leg press", ExerciseType: "Prensa piernas", Pattern: "Máquina", Equipment: "Sled 45°", Subtype: "Trabajo global pierna, buen quad"},
	{Muscle: "Cuádriceps", Name: "Hack squat machine", ExerciseType: "Sentadilla guiada", Pattern: "Máquina", Equipment: "Hack", Subtype: "Gran enfoque en cuádriceps según pies"},
	{Muscle: "Cuádriceps", Name: "Walking lunge", ExerciseType: "Zancada", Pattern: "Mancuernas", Equipment: "Libre", Subtype: "Clásico para quad"},
	{Muscle: "Cuádriceps", Name: "Bulgarian split squat", ExerciseType: "Zancada unilateral", Pattern: "Mancuernas", Equipment: "Pie trasero elevado", Subtype: "Muy usado para quad"},

	{Muscle: "Isquiotibiales", Name: "Romanian deadlift", ExerciseType: "Bisagra", Pattern: "Barra", Equipment: "Libre", Subtype: "Foco isquios/glúteo y erectores"},
	{Muscle: "Isquiotibiales", Name: "Stiff-leg deadlift", ExerciseType: "Bisagra", Pattern: "Barra", Equipment: "Libre", Subtype: "Piernas casi rectas, más isquios"},
	{Muscle: "Isquiotibiales", Name: "Lying leg curl machine", ExerciseType: "Flexión rodilla", Pattern: "Máquina", Equipment: "Tumbado", Subtype: "Aislante clásico de isquios"},
	{Muscle: "Isquiotibiales", Name: "Seated leg curl machine", ExerciseType: "Flexión rodilla", Pattern: "Máquina", Equipment: "Sentado", Subtype: "Isquios en posición estirada"},
	{Muscle: "Isquiotibiales", Name: "DB Romanian deadlift", ExerciseType: "Bisagra", Pattern: "Mancuernas", Equipment: "Libre", Subtype: "Variante unilateral o bilateral"},

	{Muscle: "Glúteo", Name: "Hip thrust (barra)", ExerciseType: "Extensión cadera", Pattern: "Barra", Equipment: "Banco", Subtype: "Máximo glúteo aislado"},
	{Muscle: "Glúteo", Name: "Glute bridge", ExerciseType: "Extensión cadera", Pattern: "Peso corporal", Equipment: "Suelo", Subtype: "Versión básica del hip thrust"},
	{Muscle: "Glúteo", Name: "Cable kickback", ExerciseType: "Extensión cadera", Pattern: "Polea", Equipment: "Baja, tobillera", Subtype: "Patada atrás con cable"},
	{Muscle: "Glúteo", Name: "Hip abduction machine", ExerciseType: "Abducción cadera", Pattern: "Máquina", Equipment: "Selectorizada", Subtype: "Glúteo medio principalmente"},

	{Muscle: "Pantorrilla", Name: "Standing calf raise (machine)", ExerciseType: "Flexión plantar", Pattern: "Máquina", Equipment: "Selectorizada", Subtype: "Rodillas extendidas, gastrocnemios"},
	{Muscle: "Pantorrilla", Name: "Seated calf raise machine", ExerciseType: "Flexión plantar", Pattern: "Máquina", Equipment: "Sentado", Subtype: "Rodilla flexionada, más sóleo"},
	{Muscle: "Pantorrilla", Name: "Leg press calf raise", ExerciseType: "Flexión plantar", Pattern: "Máquina", Equipment: "Leg press", Subtype: "Usando la prensa para gemelos"},

	{Muscle: "Abdomen", Name: "Crunch", ExerciseType: "Flexión tronco", Pattern: "Peso corporal", Equipment: "Suelo", Subtype: "Recto abdominal superior"},
	{Muscle: "Abdomen", Name: "Plank", ExerciseType: "Anti-extensión", Pattern: "Peso corporal", Equipment: "Suelo", Subtype: "Plancha frontal clásica"},
	{Muscle: "Abdomen", Name: "Hanging leg raise", ExerciseType: "Elevación cadera", Pattern: "Peso corporal", Equipment: "Barra", Subtype: "Piernas rectas, muy demandante"},
	{Muscle: "Abdomen", Name: "Russian twist (BW)", ExerciseType: "Rotación", Pattern: "Peso corporal", Equipment: "Suelo", Subtype: "Oblicuos"},
	{Muscle: "Abdomen", Name: "Cable crunch (kneeling)", ExerciseType: "Flexión tronco", Pattern: "Polea", Equipment: "Polea alta, cuerda", Subtype: "Muy popular para recto"},
	{Muscle: "Abdomen", Name: "Ab wheel rollout", ExerciseType: "Anti-extensión", Pattern: "Peso corporal", Equipment: "Rueda/barra", Subtype: "Muy exigente para core"},
	{Muscle: "Abdomen", Name: "Side plank", ExerciseType: "Anti-flexión lateral", Pattern: "Peso corporal", Equipment: "Suelo", Subtype: "Oblicuos/transverso"},
}
