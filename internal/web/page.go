package web

import "html/template"

type pageData struct {
	Label   string
	Input   string
	Notice  noticeData
	Rows    []rowData
	Visible bool
}

type noticeData struct {
	Text     string
	Severity string
}

type rowData struct {
	ID    string
	Value string
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>todolist</title>
<style>
body { font-family: sans-serif; max-width: 36rem; margin: 2rem auto; }
.alert { min-height: 1.5rem; padding: .25rem .5rem; }
.alert-success { background: #d4edda; color: #155724; }
.alert-danger { background: #f8d7da; color: #721c24; }
.todo-item { display: flex; justify-content: space-between; padding: .25rem 0; }
.todo-item form { display: inline; }
</style>
</head>
<body>
<h1>Todos</h1>
<p class="alert{{if .Notice.Text}} alert-{{.Notice.Severity}}{{end}}">{{.Notice.Text}}</p>
<form class="todo-form" method="post" action="/submit">
  <input type="text" name="value" value="{{.Input}}" placeholder="e.g. buy milk" autofocus>
  <button type="submit" class="submit-btn">{{.Label}}</button>
</form>
{{if .Visible}}
<div class="todo-container">
  <div class="todo-list">
  {{range .Rows}}
    <article class="todo-item" data-id="{{.ID}}">
      <p class="title">{{.Value}}</p>
      <div class="btn-container">
        <form method="post" action="/items/{{.ID}}/edit"><button type="submit" class="edit-btn">edit</button></form>
        <form method="post" action="/items/{{.ID}}/delete"><button type="submit" class="delete-btn">delete</button></form>
      </div>
    </article>
  {{end}}
  </div>
  <form method="post" action="/clear"><button type="submit" class="clear-btn">clear items</button></form>
</div>
{{else}}
<p class="empty">no items</p>
{{end}}
</body>
</html>
`))
