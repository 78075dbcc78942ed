package models

import "time"

// APIResponse estructura estándar para respuestas de API
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Rol de usuario dentro de la plataforma
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// User usuario de la plataforma
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Course curso dictado por un profesor. La inscripción está protegida
// por una clave de acceso compartida.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TeacherID   string    `json:"teacherId"`
	AccessKey   string    `json:"accessKey,omitempty"` // sólo visible para el profesor
	CreatedAt   time.Time `json:"createdAt"`
}

// Enrollment inscripción de un estudiante en un curso
type Enrollment struct {
	CourseID   string    `json:"courseId"`
	UserID     string    `json:"userId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// Quiz colección de preguntas de un curso. QuestionLimit acota cuántas
// preguntas se sirven por sesión (subconjunto aleatorio); cero sirve todas.
type Quiz struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"courseId"`
	Title         string    `json:"title"`
	QuestionLimit int       `json:"questionLimit"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Material archivo de un curso, con los bytes en disco y los metadatos
// en la base de datos
type Material struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"`
	FileName   string    `json:"fileName"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Requests de la API

// UserCreateRequest request para crear usuario
type UserCreateRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=student teacher"`
}

// CourseCreateRequest request para crear curso
type CourseCreateRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"max=2000"`
	TeacherID   string `json:"teacherId" validate:"required,uuid4"`
}

// EnrollRequest request para inscribirse en un curso
type EnrollRequest struct {
	UserID    string `json:"userId" validate:"required,uuid4"`
	AccessKey string `json:"accessKey" validate:"required"`
}

// QuizCreateRequest request para crear un quiz
type QuizCreateRequest struct {
	Title         string `json:"title" validate:"required,min=3,max=150"`
	QuestionLimit int    `json:"questionLimit" validate:"min=0"`
}

// QuestionCreateRequest request para agregar una pregunta a un quiz
type QuestionCreateRequest struct {
	Text    string            `json:"text" validate:"required,min=3"`
	Type    string            `json:"type" validate:"required"`
	Options map[string]string `json:"options" validate:"dive,keys,alphanum,max=8,endkeys,required"`
	Correct string            `json:"correctAnswer" validate:"required"`
}

// CourseResponse respuesta de cursos
type CourseResponse struct {
	Course  *Course  `json:"course,omitempty"`
	Courses []Course `json:"courses,omitempty"`
	Count   int      `json:"count,omitempty"`
}

// QuizResponse respuesta de quizzes y preguntas
type QuizResponse struct {
	Quiz      *Quiz      `json:"quiz,omitempty"`
	Quizzes   []Quiz     `json:"quizzes,omitempty"`
	Question  *Question  `json:"question,omitempty"`
	Questions []Question `json:"questions,omitempty"`
	Count     int        `json:"count,omitempty"`
}
